package handlers

import (
	"net/http"

	"dameningen/internal/db"
	"dameningen/internal/logger"
	"dameningen/internal/middleware"
	"dameningen/internal/models"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct{}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// Like 点赞。重复点赞幂等处理，直接当成功返回。
func (h *LikeHandler) Like(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	episodeID := c.Param("episode_id")

	var episode models.Episode
	if err := db.DB.First(&episode, "id = ?", episodeID).Error; err != nil {
		NotFound(c, "エピソードが見つかりません")
		return
	}

	like := models.Like{
		UserID:    currentUser.ID,
		EpisodeID: episodeID,
	}
	if err := db.DB.Create(&like).Error; err != nil {
		// 唯一键冲突 = 已经点过赞
		var existing models.Like
		if db.DB.Where("user_id = ? AND episode_id = ?", currentUser.ID, episodeID).
			First(&existing).Error == nil {
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to create like")
		ServerError(c, "Failed to like")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Unlike 取消点赞。没点过赞也当成功返回。
func (h *LikeHandler) Unlike(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	episodeID := c.Param("episode_id")

	if err := db.DB.
		Where("user_id = ? AND episode_id = ?", currentUser.ID, episodeID).
		Delete(&models.Like{}).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to delete like")
		ServerError(c, "Failed to unlike")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
