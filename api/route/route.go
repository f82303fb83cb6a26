package route

import (
	"summit-go-server/api/controller"
	"summit-go-server/api/middleware"
	domainRepo "summit-go-server/domain/repository"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由依赖注入结构
type Dependencies struct {
	SiteTextController   *controller.SiteTextController
	EventController      *controller.EventController
	SpeakerController    *controller.SpeakerController
	SponsorController    *controller.SponsorController
	NewsletterController *controller.NewsletterController
	ContactController    *controller.ContactController
	WebhookController    *controller.WebhookController
	WSHandler            *controller.WSHandler
	UserRepo             domainRepo.UserRepository
}

// Setup 配置所有路由
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- 公开路由 ---

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "summit-go-server",
		})
	})

	// Clerk Webhook（使用签名验证，不使用 JWT）
	router.POST("/webhook/clerk", deps.WebhookController.HandleClerkWebhook)

	// --- WebSocket 路由 ---
	// WebSocket 自行在 Handler 中验证 Token
	router.GET("/ws", deps.WSHandler.HandleWS)

	// --- 公开内容 API ---
	api := router.Group("/api")
	{
		// 站点文案按页批量读取（渲染永远不因内容失败而阻塞）
		api.GET("/site-texts", deps.SiteTextController.ListByPage)

		// 营销内容
		api.GET("/events", deps.EventController.ListPublished)
		api.GET("/events/:slug", deps.EventController.GetBySlug)
		api.GET("/schedule", deps.EventController.ListSchedule)
		api.GET("/speakers", deps.SpeakerController.List)
		api.GET("/sponsors", deps.SponsorController.List)

		// 表单提交
		api.POST("/newsletter/subscribe", deps.NewsletterController.Subscribe)
		api.POST("/newsletter/unsubscribe", deps.NewsletterController.Unsubscribe)
		api.POST("/contact", deps.ContactController.Submit)
	}

	// --- 后台 API（Clerk JWT + 管理员角色）---
	admin := router.Group("/api/admin")
	admin.Use(middleware.ClerkAuth(), middleware.RequireAdmin(deps.UserRepo))
	{
		// 行内编辑的持久化写入口（幂等 upsert）
		admin.PUT("/site-texts", deps.SiteTextController.Save)
		admin.DELETE("/site-texts/:id", deps.SiteTextController.Delete)

		// 活动
		admin.GET("/events", deps.EventController.ListAll)
		admin.POST("/events", deps.EventController.Create)
		admin.PATCH("/events/:id", deps.EventController.Patch)
		admin.DELETE("/events/:id", deps.EventController.Delete)

		// 日程
		admin.POST("/schedule", deps.EventController.CreateScheduleItem)
		admin.PUT("/schedule/:id", deps.EventController.UpdateScheduleItem)
		admin.DELETE("/schedule/:id", deps.EventController.DeleteScheduleItem)

		// 讲者
		admin.POST("/speakers", deps.SpeakerController.Create)
		admin.PUT("/speakers/:id", deps.SpeakerController.Update)
		admin.DELETE("/speakers/:id", deps.SpeakerController.Delete)

		// 赞助商
		admin.POST("/sponsors", deps.SponsorController.Create)
		admin.PUT("/sponsors/:id", deps.SponsorController.Update)
		admin.DELETE("/sponsors/:id", deps.SponsorController.Delete)

		// 订阅者
		admin.GET("/subscribers", deps.NewsletterController.ListSubscribers)
		admin.DELETE("/subscribers/:id", deps.NewsletterController.DeleteSubscriber)

		// 联系留言
		admin.GET("/messages", deps.ContactController.ListMessages)
		admin.PATCH("/messages/:id/read", deps.ContactController.MarkRead)
		admin.DELETE("/messages/:id", deps.ContactController.DeleteMessage)
	}
}
