/*
 * @Description:
 * @Author: 沐音
 * @Date: 2025-09-22 11:30:55
 * @LastEditTime: 2025-12-05 18:26:37
 * @LastEditors: 沐音
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/internal/app/middleware"
	auth_handler "github.com/muselink-c/muselink-app/pkg/handler/auth"
	collaboration_handler "github.com/muselink-c/muselink-app/pkg/handler/collaboration"
	comment_handler "github.com/muselink-c/muselink-app/pkg/handler/comment"
	user_handler "github.com/muselink-c/muselink-app/pkg/handler/user"
	work_handler "github.com/muselink-c/muselink-app/pkg/handler/work"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler          *auth_handler.AuthHandler
	userHandler          *user_handler.UserHandler
	workHandler          *work_handler.WorkHandler
	collaborationHandler *collaboration_handler.CollaborationHandler
	commentHandler       *comment_handler.CommentHandler
	mw                   *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.AuthHandler,
	userHandler *user_handler.UserHandler,
	workHandler *work_handler.WorkHandler,
	collaborationHandler *collaboration_handler.CollaborationHandler,
	commentHandler *comment_handler.CommentHandler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:          authHandler,
		userHandler:          userHandler,
		workHandler:          workHandler,
		collaborationHandler: collaborationHandler,
		commentHandler:       commentHandler,
		mw:                   mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 app.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	// 创建 /api 分组
	apiGroup := engine.Group("/api")
	// 应用全局反缓存中间件
	apiGroup.Use(NoCacheMiddleware())

	// 本地存储签名下载。签名本身即授权，无需登录态
	apiGroup.GET("/download/local/:id", r.workHandler.DownloadLocal)

	// 注册各个模块的路由
	r.registerAuthRoutes(apiGroup)
	r.registerUserRoutes(apiGroup)
	r.registerWorkRoutes(apiGroup)
	r.registerCollaborationRoutes(apiGroup)
	r.registerCommentRoutes(apiGroup)
}

// registerAuthRoutes 注册认证相关的路由
func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		// 注册和登录带频率限制，防止撞库和批量注册
		auth.POST("/register", middleware.AuthRateLimit(), r.authHandler.Register)
		auth.POST("/login", middleware.AuthRateLimit(), r.authHandler.Login)
		auth.POST("/refresh-token", r.authHandler.Refresh)
	}
}

// registerUserRoutes 注册用户相关的路由
func (r *Router) registerUserRoutes(api *gin.RouterGroup) {
	// 公开的用户主页接口
	usersPublic := api.Group("/users")
	{
		usersPublic.GET("/:id", r.userHandler.GetPublicProfile)
		usersPublic.GET("/:id/works", r.workHandler.ListByUser)
	}

	// 当前登录用户的个人资料接口
	user := api.Group("/user").Use(r.mw.JWTAuth())
	{
		user.GET("/profile", r.userHandler.GetProfile)
		user.PUT("/profile", r.userHandler.UpdateProfile)
	}
}

// registerWorkRoutes 注册作品相关的路由
func (r *Router) registerWorkRoutes(api *gin.RouterGroup) {
	// 公开/可选登录的读接口。私有作品的可见性在 service 层裁决，
	// 带登录态时作者本人可以看到自己的私有作品
	worksPublic := api.Group("/works")
	{
		worksPublic.GET("/latest", r.workHandler.ListLatest)
		worksPublic.GET("/:id", r.mw.JWTAuthOptional(), r.workHandler.Get)
		worksPublic.GET("/:id/comments", r.commentHandler.ListByWork)

		// 播放上报允许匿名，以访客标识去重
		worksPublic.POST("/:id/play", r.mw.JWTAuthOptional(), r.workHandler.Play)
	}

	// 需要登录的写接口
	works := api.Group("/works").Use(r.mw.JWTAuth())
	{
		works.POST("", r.workHandler.Create)
		works.PUT("/:id", r.workHandler.Update)
		works.DELETE("/:id", r.workHandler.Delete)

		works.POST("/:id/star", r.workHandler.Star)
		works.DELETE("/:id/star", r.workHandler.Unstar)

		works.GET("/:id/download", r.workHandler.GetDownloadURL)
	}
}

// registerCollaborationRoutes 注册协作版本相关的路由
func (r *Router) registerCollaborationRoutes(api *gin.RouterGroup) {
	// 版本历史和待审提案列表。访问权在 service 层按
	// 作品可见性与协作开关裁决，所以这里只做可选登录
	collabPublic := api.Group("/works")
	{
		collabPublic.GET("/:id/versions", r.mw.JWTAuthOptional(), r.collaborationHandler.ListVersions)
		collabPublic.GET("/:id/proposals", r.mw.JWTAuthOptional(), r.collaborationHandler.ListProposals)
	}

	collab := api.Group("/works").Use(r.mw.JWTAuth())
	{
		// 提交新版本，成功后生成一条待审提案
		collab.POST("/:id/versions", r.collaborationHandler.SubmitVersion)

		// 作品所有者裁决提案
		collab.POST("/:id/proposals/:proposalId/review", r.collaborationHandler.Review)
	}
}

// registerCommentRoutes 注册评论相关的路由
func (r *Router) registerCommentRoutes(api *gin.RouterGroup) {
	// 发表评论挂在作品路径下，删除按评论自身的公共ID
	api.POST("/works/:id/comments", r.mw.JWTAuth(), r.commentHandler.Create)

	comments := api.Group("/comments").Use(r.mw.JWTAuth())
	{
		comments.DELETE("/:id", r.commentHandler.Delete)
	}
}
