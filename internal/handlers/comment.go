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

const commentMaxLength = 500

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type createCommentRequest struct {
	Content   string `json:"content"`
	EpisodeID string `json:"episodeId"`
}

// commentAuthor 评论作者的公开字段，不暴露 email 等隐私信息
type commentAuthor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	AvatarURL string `json:"avatar_url"`
}

type commentItem struct {
	ID        string        `json:"id"`
	EpisodeID string        `json:"episode_id"`
	UserID    string        `json:"user_id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	User      commentAuthor `json:"user"`
}

func newCommentItem(comment models.Comment) commentItem {
	return commentItem{
		ID:        comment.ID,
		EpisodeID: comment.EpisodeID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		User: commentAuthor{
			ID:        comment.User.ID,
			Name:      comment.User.Name,
			Avatar:    comment.User.Avatar,
			AvatarURL: comment.User.AvatarURL,
		},
	}
}

// Create 发表评论
func (h *CommentHandler) Create(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid JSON body")
		return
	}

	content := strings.TrimSpace(utils.SanitizeText(req.Content))
	if content == "" {
		BadRequest(c, "Content is required")
		return
	}
	if utf8.RuneCountInString(content) > commentMaxLength {
		BadRequest(c, "コメントは500文字以内にしてください")
		return
	}
	if req.EpisodeID == "" {
		BadRequest(c, "episodeId is required")
		return
	}

	var episode models.Episode
	if err := db.DB.First(&episode, "id = ?", req.EpisodeID).Error; err != nil {
		NotFound(c, "エピソードが見つかりません")
		return
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		EpisodeID: req.EpisodeID,
		UserID:    currentUser.ID,
		Content:   content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to create comment")
		ServerError(c, "Failed to create comment")
		return
	}

	comment.User = *currentUser
	c.JSON(http.StatusOK, newCommentItem(comment))
}

// List 获取某条 Episode 的评论，按时间升序
func (h *CommentHandler) List(c *gin.Context) {
	episodeID := c.Param("episode_id")

	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("episode_id = ?", episodeID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch comments")
		ServerError(c, "Failed to fetch comments")
		return
	}

	items := make([]commentItem, len(comments))
	for i, comment := range comments {
		items[i] = newCommentItem(comment)
	}

	c.JSON(http.StatusOK, gin.H{"comments": items})
}

// Delete 删除自己的评论
func (h *CommentHandler) Delete(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	commentID := c.Param("comment_id")

	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		NotFound(c, "コメントが見つかりません")
		return
	}

	if comment.UserID != currentUser.ID {
		Forbidden(c, "自分のコメントのみ削除できます")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		ServerError(c, "コメントの削除に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "コメントを削除しました"})
}
