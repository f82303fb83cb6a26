package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"summit-go-server/api/controller"
	"summit-go-server/api/route"
	"summit-go-server/bootstrap"
	"summit-go-server/internal/content"
	"summit-go-server/internal/ws"
	"summit-go-server/repository"
	"summit-go-server/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("[Server] Summit Go Server 启动中...")

	// 加载环境变量
	env := bootstrap.LoadEnv()

	// 初始化 Clerk
	bootstrap.InitClerk()

	// 连接数据库
	db := bootstrap.NewDatabase(env.DatabaseURL)

	// 依赖注入 - Repository 层
	siteTextRepo := repository.NewSiteTextRepository(db)
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	speakerRepo := repository.NewSpeakerRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// 共享文案缓存（显式注入的单例）+ 按页加载器
	textCache := content.NewTextCache()
	textStore := content.NewStore(textCache, siteTextRepo.(content.TextLoader))

	// WebSocket 预览 Hub
	hub := ws.NewHub(siteTextRepo.(ws.ContentService))

	// 依赖注入 - UseCase 层
	siteTextUseCase := usecase.NewSiteTextUseCase(siteTextRepo, textStore, hub)
	eventUseCase := usecase.NewEventUseCase(eventRepo, scheduleRepo)
	speakerUseCase := usecase.NewSpeakerUseCase(speakerRepo)
	sponsorUseCase := usecase.NewSponsorUseCase(sponsorRepo)
	newsletterUseCase := usecase.NewNewsletterUseCase(subscriberRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo)

	// 依赖注入 - Controller 层
	siteTextController := controller.NewSiteTextController(siteTextUseCase)
	eventController := controller.NewEventController(eventUseCase)
	speakerController := controller.NewSpeakerController(speakerUseCase)
	sponsorController := controller.NewSponsorController(sponsorUseCase)
	newsletterController := controller.NewNewsletterController(newsletterUseCase)
	contactController := controller.NewContactController(contactUseCase)
	wsHandler := controller.NewWSHandler(hub, userRepo, env.AllowedOrigins)
	webhookController := controller.NewWebhookController(userRepo, env.WebhookSecret)

	// 启动 Hub 事件循环
	go hub.Run()

	// 配置 Gin 路由
	router := gin.Default()

	// CORS 配置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 设置路由
	route.Setup(router, &route.Dependencies{
		SiteTextController:   siteTextController,
		EventController:      eventController,
		SpeakerController:    speakerController,
		SponsorController:    sponsorController,
		NewsletterController: newsletterController,
		ContactController:    contactController,
		WebhookController:    webhookController,
		WSHandler:            wsHandler,
		UserRepo:             userRepo,
	})

	// 启动 HTTP 服务
	srv := &http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[Server] 服务已启动: http://localhost:%s", env.Port)
		log.Printf("[Server] API 端点:")
		log.Printf("   GET  /health                     - 健康检查")
		log.Printf("   GET  /api/site-texts?page=xxx    - 按页读取站点文案")
		log.Printf("   PUT  /api/admin/site-texts       - 保存文案（幂等 upsert）")
		log.Printf("   GET  /api/speakers               - 讲者列表")
		log.Printf("   GET  /api/schedule               - 大会日程")
		log.Printf("   POST /api/newsletter/subscribe   - 邮件订阅")
		log.Printf("   GET  /ws?page=xxx&token=xxx      - WebSocket 预览连接")
		log.Printf("   POST /webhook/clerk              - Clerk Webhook")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] 服务启动失败: %v", err)
		}
	}()

	// 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] 收到停机信号，正在优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] 服务强制关闭: %v", err)
	}

	log.Println("[Server] 服务已安全停止")
}
