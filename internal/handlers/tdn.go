package handlers

import (
	"net/http"

	"dameningen/internal/services"

	"github.com/gin-gonic/gin"
)

type TdnHandler struct{}

func NewTdnHandler() *TdnHandler {
	return &TdnHandler{}
}

// Get 今日のダメ人間：过去 24 小时获赞最多的 Episode
func (h *TdnHandler) Get(c *gin.Context) {
	tdn := services.GetTdn()
	if tdn == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No TDN today"})
		return
	}
	c.JSON(http.StatusOK, tdn)
}

// History 过去 30 天每天的 TDN
func (h *TdnHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetTdnHistory(services.TdnHistoryDays))
}
