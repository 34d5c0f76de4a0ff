package app

import (
	"context"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/controller"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/pkg/configwatcher"
	"exam_prep_backend/pkg/database"
	"exam_prep_backend/pkg/logger"
	"exam_prep_backend/pkg/monitoring"
	"exam_prep_backend/pkg/security"
	"exam_prep_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	textbook   *repository.TextbookRepository
	schedule   *repository.ScheduleRepository
	studyLog   *repository.StudyLogRepository
	exam       *repository.ExamRepository
	university *repository.UniversityRepository
	ankiMedia  *repository.AnkiMediaRepository
}

type services struct {
	textbook  *service.TextbookService
	schedule  *service.ScheduleService
	studyLog  *service.StudyLogService
	exam      *service.ExamService
	timeline  *service.TimelineService
	progress  *service.ProgressService
	calendar  *service.CalendarService
	analytics *service.AnalyticsService
	media     *service.MediaService
}

type controllers struct {
	textbook  *controller.TextbookController
	schedule  *controller.ScheduleController
	studyLog  *controller.StudyLogController
	exam      *controller.ExamController
	timeline  *controller.TimelineController
	calendar  *controller.CalendarController
	progress  *controller.ProgressController
	analytics *controller.AnalyticsController
	media     *controller.MediaController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		textbook:   repository.NewTextbookRepository(db),
		schedule:   repository.NewScheduleRepository(db),
		studyLog:   repository.NewStudyLogRepository(db),
		exam:       repository.NewExamRepository(db),
		university: repository.NewUniversityRepository(db),
		ankiMedia:  repository.NewAnkiMediaRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	s.textbook = service.NewTextbookService(repos.textbook, repos.schedule)
	s.schedule = service.NewScheduleService(repos.schedule, repos.textbook)
	s.studyLog = service.NewStudyLogService(repos.studyLog, repos.textbook)
	s.exam = service.NewExamService(repos.exam, repos.university)
	s.timeline = service.NewTimelineService(repos.schedule, repos.exam, rdb, cfg)
	s.progress = service.NewProgressService(repos.textbook, repos.schedule, repos.studyLog)
	s.calendar = service.NewCalendarService(s.timeline, cfg)
	s.analytics = service.NewAnalyticsService(repos.studyLog, rdb, cfg)

	media, err := service.NewMediaService(cfg, repos.ankiMedia)
	if err != nil {
		return nil, err
	}
	s.media = media

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		textbook:  controller.NewTextbookController(s.textbook),
		schedule:  controller.NewScheduleController(s.schedule, s.timeline),
		studyLog:  controller.NewStudyLogController(s.studyLog),
		exam:      controller.NewExamController(s.exam, s.timeline),
		timeline:  controller.NewTimelineController(s.timeline),
		calendar:  controller.NewCalendarController(s.calendar),
		progress:  controller.NewProgressController(s.progress),
		analytics: controller.NewAnalyticsController(s.analytics),
		media:     controller.NewMediaController(s.media),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig 热加载缓存TTL和学年起始月，数据库等连接类配置不热切换
func (a *App) watchConfig() {
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.Config.Cache = newCfg.Cache
		a.Config.Calendar = newCfg.Calendar
		a.Config.RateLimit = newCfg.RateLimit
	})

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("exam-prep-tracker", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
