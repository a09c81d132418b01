package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"dameningen/internal/db"
	"dameningen/internal/logger"
	"dameningen/internal/middleware"
	"dameningen/internal/models"
	"dameningen/internal/services"
	"dameningen/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me 当前登录用户信息
func (h *UserHandler) Me(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": currentUser})
}

// GetProfile 当前用户的个人资料
func (h *UserHandler) GetProfile(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"name":       currentUser.Name,
		"avatar":     currentUser.Avatar,
		"avatar_url": currentUser.AvatarURL,
		"bio":        currentUser.Bio,
	})
}

type updateProfileRequest struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}

// UpdateProfile 更新个人资料
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, "名前を入力してください")
		return
	}
	bio := strings.TrimSpace(utils.SanitizeText(req.Bio))
	if utf8.RuneCountInString(bio) > 200 {
		BadRequest(c, "自己紹介は200文字以内にしてください")
		return
	}

	currentUser.Name = name
	currentUser.Bio = bio
	if req.Avatar != "" {
		currentUser.Avatar = req.Avatar
	}
	currentUser.AvatarURL = strings.TrimSpace(req.AvatarURL)

	if err := db.DB.Save(currentUser).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to update profile")
		ServerError(c, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, currentUser)
}

// Detail 用户主页：基本信息 + 总赞数 + 等级 + 关注数据 + 最新 10 条 Episode
func (h *UserHandler) Detail(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		NotFound(c, "User not found")
		return
	}

	// 该用户全部 Episode 收到的总赞数
	var totalLikes int64
	if err := db.DB.Model(&models.Like{}).
		Joins("JOIN episodes ON episodes.id = likes.episode_id").
		Where("episodes.user_id = ?", userID).
		Count(&totalLikes).Error; err != nil {
		logger.Log.Error().Err(err).Msg("Failed to count total likes")
		ServerError(c, "Failed to fetch user")
		return
	}

	rankInfo := services.CalculateRank(int(totalLikes))

	var followersCount, followingCount int64
	db.DB.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&followersCount)
	db.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&followingCount)

	isFollowing := false
	if me := middleware.CurrentUser(c); me != nil && me.ID != userID {
		var follow models.Follow
		if db.DB.Where("follower_id = ? AND following_id = ?", me.ID, userID).
			First(&follow).Error == nil {
			isFollowing = true
		}
	}

	var episodes []models.Episode
	db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&episodes)
	fillLikeCounts(episodes)

	episodeList := make([]gin.H, len(episodes))
	for i, e := range episodes {
		episodeList[i] = gin.H{
			"id":         e.ID,
			"content":    e.Content,
			"created_at": e.CreatedAt,
			"likes":      e.LikeCount,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"avatar":     user.Avatar,
			"avatar_url": user.AvatarURL,
			"bio":        user.Bio,
		},
		"totalLikes":      totalLikes,
		"rank":            rankInfo,
		"followersCount":  followersCount,
		"followingCount":  followingCount,
		"isFollowing":     isFollowing,
		"daysSinceJoined": utils.GetDaysSinceJoined(user.CreatedAt),
		"episodes":        episodeList,
	})
}

// Emojis 头像选择用的 emoji 列表
func (h *UserHandler) Emojis(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"emojis": utils.GetCommonEmojis()})
}

// Activity 当前用户的活动日历数据
func (h *UserHandler) Activity(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	h.renderActivity(c, currentUser.ID)
}

// UserActivity 指定用户的活动日历数据
func (h *UserHandler) UserActivity(c *gin.Context) {
	h.renderActivity(c, c.Param("id"))
}

func (h *UserHandler) renderActivity(c *gin.Context, userID string) {
	activities, err := services.GetUserActivity(userID, services.DaysToShow)
	if err != nil {
		// 查询失败按"没有数据"降级，只记日志
		logger.Log.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch activity data")
		c.JSON(http.StatusOK, gin.H{"activities": []services.DailyActivity{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
