package handlers

import (
	"net/http"

	"dameningen/internal/db"
	"dameningen/internal/logger"
	"dameningen/internal/middleware"
	"dameningen/internal/models"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct{}

func NewFollowHandler() *FollowHandler {
	return &FollowHandler{}
}

type followRequest struct {
	FollowingID string `json:"followingId"`
}

// Follow 关注用户。自己关注自己直接拒绝。
func (h *FollowHandler) Follow(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowingID == "" {
		BadRequest(c, "followingId is required")
		return
	}

	if currentUser.ID == req.FollowingID {
		BadRequest(c, "自分自身をフォローすることはできません")
		return
	}

	var target models.User
	if err := db.DB.First(&target, "id = ?", req.FollowingID).Error; err != nil {
		NotFound(c, "ユーザーが見つかりません")
		return
	}

	follow := models.Follow{
		FollowerID:  currentUser.ID,
		FollowingID: req.FollowingID,
	}
	if err := db.DB.Create(&follow).Error; err != nil {
		// 唯一键冲突 = 已关注，幂等处理
		var existing models.Follow
		if db.DB.Where("follower_id = ? AND following_id = ?", currentUser.ID, req.FollowingID).
			First(&existing).Error == nil {
			c.JSON(http.StatusOK, gin.H{"message": "フォローしました"})
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to create follow")
		ServerError(c, "フォローに失敗しました")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "フォローしました"})
}

// Unfollow 取消关注，没关注过也当成功
func (h *FollowHandler) Unfollow(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowingID == "" {
		BadRequest(c, "followingId is required")
		return
	}

	if err := db.DB.
		Where("follower_id = ? AND following_id = ?", currentUser.ID, req.FollowingID).
		Delete(&models.Follow{}).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to delete follow")
		ServerError(c, "フォロー解除に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "フォローを解除しました"})
}

// Count 当前用户的关注数与粉丝数
func (h *FollowHandler) Count(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	var followingCount, followerCount int64
	db.DB.Model(&models.Follow{}).Where("follower_id = ?", currentUser.ID).Count(&followingCount)
	db.DB.Model(&models.Follow{}).Where("following_id = ?", currentUser.ID).Count(&followerCount)

	c.JSON(http.StatusOK, gin.H{
		"followingCount": followingCount,
		"followerCount":  followerCount,
	})
}
