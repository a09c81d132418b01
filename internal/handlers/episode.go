package handlers

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"dameningen/internal/db"
	"dameningen/internal/logger"
	"dameningen/internal/middleware"
	"dameningen/internal/models"
	"dameningen/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Episode 内容长度上限（按字符数，不是字节数）
const episodeMaxLength = 200

type EpisodeHandler struct{}

func NewEpisodeHandler() *EpisodeHandler {
	return &EpisodeHandler{}
}

type createEpisodeRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// episodeItem 列表响应里的一条 Episode
type episodeItem struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Likes     int    `json:"likes"`
	LikedByMe bool   `json:"likedByMe"`
}

// Create 发布 Episode
func (h *EpisodeHandler) Create(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	var req createEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid JSON body")
		return
	}

	content := strings.TrimSpace(utils.SanitizeText(req.Content))
	if n := utf8.RuneCountInString(content); n == 0 || n > episodeMaxLength {
		BadRequest(c, "content must be 1-200 chars")
		return
	}

	episode := models.Episode{
		ID:       uuid.NewString(),
		UserID:   currentUser.ID,
		Content:  content,
		Category: strings.TrimSpace(req.Category),
	}

	if err := db.DB.Create(&episode).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to create episode")
		ServerError(c, "Failed to create episode")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         episode.ID,
		"content":    episode.Content,
		"category":   episode.Category,
		"created_at": episode.CreatedAt,
		"user_id":    episode.UserID,
	})
}

// List 分页获取 Episode 列表，带作者名、赞数和 likedByMe 标记
func (h *EpisodeHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	var episodes []models.Episode
	if err := db.DB.Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&episodes).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch episodes")
		ServerError(c, "Failed to fetch episodes")
		return
	}

	var total int64
	db.DB.Model(&models.Episode{}).Count(&total)

	fillLikeCounts(episodes)

	// 当前用户的点赞标记
	likedSet := make(map[string]bool)
	if me := middleware.CurrentUser(c); me != nil && len(episodes) > 0 {
		ids := make([]string, len(episodes))
		for i, e := range episodes {
			ids[i] = e.ID
		}
		var likedIDs []string
		db.DB.Model(&models.Like{}).
			Where("user_id = ? AND episode_id IN ?", me.ID, ids).
			Pluck("episode_id", &likedIDs)
		for _, id := range likedIDs {
			likedSet[id] = true
		}
	}

	items := make([]episodeItem, len(episodes))
	for i, e := range episodes {
		items[i] = episodeItem{
			ID:        e.ID,
			Content:   e.Content,
			Category:  e.Category,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
			UserID:    e.UserID,
			UserName:  e.User.Name,
			Likes:     e.LikeCount,
			LikedByMe: likedSet[e.ID],
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"meta":  gin.H{"total": total, "page": page, "limit": limit},
	})
}

// Delete 删除自己的 Episode，关联的赞和评论一并删除
func (h *EpisodeHandler) Delete(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	episodeID := c.Param("episode_id")

	var episode models.Episode
	if err := db.DB.First(&episode, "id = ?", episodeID).Error; err != nil {
		NotFound(c, "エピソードが見つかりません")
		return
	}

	if episode.UserID != currentUser.ID {
		Forbidden(c, "自分の投稿のみ削除できます")
		return
	}

	tx := db.DB.Begin()
	if err := tx.Where("episode_id = ?", episodeID).Delete(&models.Like{}).Error; err != nil {
		tx.Rollback()
		ServerError(c, "エピソードの削除に失敗しました")
		return
	}
	if err := tx.Where("episode_id = ?", episodeID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		ServerError(c, "エピソードの削除に失敗しました")
		return
	}
	if err := tx.Delete(&episode).Error; err != nil {
		tx.Rollback()
		ServerError(c, "エピソードの削除に失敗しました")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "エピソードを削除しました"})
}

// fillLikeCounts 批量填充 Episode 的赞数
func fillLikeCounts(episodes []models.Episode) {
	if len(episodes) == 0 {
		return
	}

	ids := make([]string, len(episodes))
	for i, e := range episodes {
		ids[i] = e.ID
	}

	type countResult struct {
		EpisodeID string
		Count     int
	}
	var results []countResult
	db.DB.Model(&models.Like{}).
		Select("episode_id, COUNT(*) as count").
		Where("episode_id IN ?", ids).
		Group("episode_id").
		Scan(&results)

	countMap := make(map[string]int, len(results))
	for _, r := range results {
		countMap[r.EpisodeID] = r.Count
	}

	for i := range episodes {
		episodes[i].LikeCount = countMap[episodes[i].ID]
	}
}
