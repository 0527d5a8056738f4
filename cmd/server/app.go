/*
 * @Description:
 * @Author: 沐音
 * @Date: 2025-09-21 23:35:28
 * @LastEditTime: 2025-12-18 16:15:28
 * @LastEditors: 沐音
 */
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/internal/app/bootstrap"
	"github.com/muselink-c/muselink-app/internal/app/middleware"
	"github.com/muselink-c/muselink-app/internal/app/task"
	"github.com/muselink-c/muselink-app/internal/infra/persistence/database"
	ent_impl "github.com/muselink-c/muselink-app/internal/infra/persistence/ent"
	"github.com/muselink-c/muselink-app/internal/infra/router"
	"github.com/muselink-c/muselink-app/internal/infra/storage"
	"github.com/muselink-c/muselink-app/pkg/config"
	auth_handler "github.com/muselink-c/muselink-app/pkg/handler/auth"
	collaboration_handler "github.com/muselink-c/muselink-app/pkg/handler/collaboration"
	comment_handler "github.com/muselink-c/muselink-app/pkg/handler/comment"
	user_handler "github.com/muselink-c/muselink-app/pkg/handler/user"
	work_handler "github.com/muselink-c/muselink-app/pkg/handler/work"
	"github.com/muselink-c/muselink-app/pkg/idgen"
	"github.com/muselink-c/muselink-app/pkg/service/auth"
	collaboration_service "github.com/muselink-c/muselink-app/pkg/service/collaboration"
	comment_service "github.com/muselink-c/muselink-app/pkg/service/comment"
	star_service "github.com/muselink-c/muselink-app/pkg/service/star"
	user_service "github.com/muselink-c/muselink-app/pkg/service/user"
	"github.com/muselink-c/muselink-app/pkg/service/utility"
	work_service "github.com/muselink-c/muselink-app/pkg/service/work"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg       *config.Config
	engine    *gin.Engine
	scheduler *task.Scheduler
	sqlDB     *sql.DB
	mw        *middleware.Middleware
	tokenSvc  auth.TokenService
	workSvc   work_service.Service
	cacheSvc  utility.CacheService
}

func (a *App) PrintBanner() {
	banner := `

      ███╗   ███╗██╗   ██╗███████╗███████╗██╗     ██╗███╗   ██╗██╗  ██╗
      ████╗ ████║██║   ██║██╔════╝██╔════╝██║     ██║████╗  ██║██║ ██╔╝
      ██╔████╔██║██║   ██║███████╗█████╗  ██║     ██║██╔██╗ ██║█████╔╝
      ██║╚██╔╝██║██║   ██║╚════██║██╔══╝  ██║     ██║██║╚██╗██║██╔═██╗
      ██║ ╚═╝ ██║╚██████╔╝███████║███████╗███████╗██║██║ ╚████║██║  ██╗
      ╚═╝     ╚═╝ ╚═════╝ ╚══════╝╚══════╝╚══════╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Println(" MuseLink - 音乐创作协作平台")
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	// --- Phase 3: 初始化应用引导程序和 ID 编码器 ---
	bootstrapper := bootstrap.NewBootstrapper(entClient)
	if err := bootstrapper.Initialize(); err != nil {
		return nil, cleanup, fmt.Errorf("应用初始化失败: %w", err)
	}
	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}

	// --- Phase 4: 初始化数据仓库层 ---
	userRepo := ent_impl.NewEntUserRepository(entClient)
	workRepo := ent_impl.NewWorkRepo(entClient)
	versionRepo := ent_impl.NewWorkVersionRepo(entClient)
	proposalRepo := ent_impl.NewWorkProposalRepo(entClient)
	starRepo := ent_impl.NewWorkStarRepo(entClient)
	commentRepo := ent_impl.NewCommentRepo(entClient)
	txManager := ent_impl.NewEntTransactionManager(entClient)

	// --- Phase 5: 初始化业务逻辑层 ---
	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	storageProvider, err := storage.NewProviderFromConfig(cfg)
	if err != nil {
		return nil, cleanup, fmt.Errorf("初始化存储提供者失败: %w", err)
	}

	tokenSvc := auth.NewTokenService(userRepo, cfg)
	authSvc := auth.NewAuthService(userRepo)
	userSvc := user_service.NewService(userRepo)
	workSvc := work_service.NewService(workRepo, storageProvider, cacheSvc)
	starSvc := star_service.NewService(starRepo, workRepo)
	commentSvc := comment_service.NewService(commentRepo, workRepo)
	collabSvc := collaboration_service.NewService(workRepo, versionRepo, proposalRepo, userRepo, txManager, storageProvider)

	// --- Phase 6: 初始化表现层 (Handlers) ---
	mw := middleware.NewMiddleware(tokenSvc)
	authHandler := auth_handler.NewAuthHandler(authSvc, tokenSvc)
	userHandler := user_handler.NewUserHandler(userSvc)
	workHandler := work_handler.NewWorkHandler(workSvc, starSvc, storageProvider)
	collaborationHandler := collaboration_handler.NewCollaborationHandler(collabSvc)
	commentHandler := comment_handler.NewCommentHandler(commentSvc)

	// --- Phase 7: 初始化路由 ---
	appRouter := router.NewRouter(
		authHandler,
		userHandler,
		workHandler,
		collaborationHandler,
		commentHandler,
		mw,
	)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	// --- Phase 9: 初始化定时任务调度器 ---
	scheduler := task.NewScheduler(workSvc, starSvc)

	app := &App{
		cfg:       cfg,
		engine:    engine,
		scheduler: scheduler,
		sqlDB:     sqlDB,
		mw:        mw,
		tokenSvc:  tokenSvc,
		workSvc:   workSvc,
		cacheSvc:  cacheSvc,
	}

	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) DB() *sql.DB {
	return a.sqlDB
}

func (a *App) Middleware() *middleware.Middleware {
	return a.mw
}

// TokenService 返回 Token 服务（用于 JWT token 生成和验证）
func (a *App) TokenService() auth.TokenService {
	return a.tokenSvc
}

func (a *App) CacheService() utility.CacheService {
	return a.cacheSvc
}

func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}
