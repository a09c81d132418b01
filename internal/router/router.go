package router

import (
	"dameningen/internal/handlers"
	"dameningen/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	episodeHandler := handlers.NewEpisodeHandler()
	likeHandler := handlers.NewLikeHandler()
	commentHandler := handlers.NewCommentHandler()
	followHandler := handlers.NewFollowHandler()
	userHandler := handlers.NewUserHandler()
	tdnHandler := handlers.NewTdnHandler()
	diagnosisHandler := handlers.NewDiagnosisHandler()

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	api.POST("/auth/register", authHandler.Register)            // 注册
	api.POST("/auth/login", authHandler.Login)                  // 登录
	api.POST("/auth/logout", authHandler.Logout)                // 退出登录
	api.GET("/episodes", episodeHandler.List)                   // Episode 列表
	api.GET("/episodes/:episode_id/comments", commentHandler.List) // 某条 Episode 的评论
	api.GET("/user/:id", userHandler.Detail)                    // 用户主页
	api.GET("/user/:id/activity", userHandler.UserActivity)     // 用户活动日历
	api.GET("/tdn", tdnHandler.Get)                             // 今日のダメ人間
	api.GET("/tdn/history", tdnHandler.History)                 // TDN 历史榜单
	api.POST("/diagnose", diagnosisHandler.Diagnose)            // AI 诊断（按 IP 限流）

	// 受保护路由 (Protected Routes)
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/episodes", episodeHandler.Create)                    // 发布 Episode
		authorized.DELETE("/episodes/:episode_id", episodeHandler.Delete)      // 删除 Episode
		authorized.POST("/episodes/:episode_id/like", likeHandler.Like)        // 点赞
		authorized.DELETE("/episodes/:episode_id/like", likeHandler.Unlike)    // 取消点赞
		authorized.POST("/comments", commentHandler.Create)                    // 发表评论
		authorized.DELETE("/comments/:comment_id", commentHandler.Delete)      // 删除评论
		authorized.POST("/follow", followHandler.Follow)                       // 关注
		authorized.DELETE("/follow", followHandler.Unfollow)                   // 取消关注
		authorized.POST("/follow-count", followHandler.Count)                  // 关注/粉丝数
		authorized.GET("/user", userHandler.Me)                                // 当前用户
		authorized.GET("/profile", userHandler.GetProfile)                     // 个人资料
		authorized.POST("/profile", userHandler.UpdateProfile)                 // 更新个人资料
		authorized.GET("/profile/emojis", userHandler.Emojis)                  // 头像 emoji 列表
		authorized.GET("/activity", userHandler.Activity)                      // 自己的活动日历
		authorized.GET("/diagnosis-history", diagnosisHandler.History)         // 诊断历史
	}
}
