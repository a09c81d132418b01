package handlers

import (
	"errors"
	"net/http"
	"strings"

	"dameningen/internal/db"
	"dameningen/internal/logger"
	"dameningen/internal/middleware"
	"dameningen/internal/models"
	"dameningen/internal/services"
	"dameningen/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 診断履歴の取得上限
const maxHistoryItems = 50

type DiagnosisHandler struct{}

func NewDiagnosisHandler() *DiagnosisHandler {
	return &DiagnosisHandler{}
}

type diagnoseRequest struct {
	Episode string `json:"episode"`
}

// Diagnose AI ダメ人間診断。按 IP 限流，成功后为登录用户追加一条诊断记录。
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	ip := services.ClientIP(c.GetHeader("X-Forwarded-For"), c.GetHeader("X-Real-IP"))

	limit := services.GetRateLimiter().Check(ip)
	if !limit.Allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "診断回数の上限に達しました。1分後に再度お試しください。",
		})
		return
	}

	var req diagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "エピソードを入力してください")
		return
	}
	episode := strings.TrimSpace(req.Episode)
	if episode == "" {
		BadRequest(c, "エピソードを入力してください")
		return
	}

	diagnosis, err := services.GetDiagnosisService().Diagnose(c.Request.Context(), episode)
	if err != nil {
		if errors.Is(err, services.ErrNoAPIKey) {
			ServerError(c, "APIキーが設定されていません")
			return
		}
		logger.Log.Error().Err(err).Msg("Gemini API error")
		ServerError(c, "診断に失敗しました。もう一度お試しください。")
		return
	}

	// ログインしていれば履歴を残す
	if currentUser := middleware.CurrentUser(c); currentUser != nil {
		history := models.DiagnosisHistory{
			ID:        uuid.NewString(),
			UserID:    currentUser.ID,
			Episode:   episode,
			Diagnosis: diagnosis,
		}
		if err := db.DB.Create(&history).Error; err != nil {
			// 履歴保存失败不影响诊断结果返回
			logger.Log.Error().Err(err).Msg("Failed to save diagnosis history")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"diagnosis":     diagnosis,
		"diagnosisHtml": utils.RenderMarkdown(diagnosis),
	})
}

// History 当前用户最近 50 条诊断记录
func (h *DiagnosisHandler) History(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	var histories []models.DiagnosisHistory
	if err := db.DB.
		Where("user_id = ?", currentUser.ID).
		Order("created_at DESC").
		Limit(maxHistoryItems).
		Find(&histories).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch diagnosis history")
		ServerError(c, "診断履歴の取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"histories": histories})
}
