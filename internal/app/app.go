package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"litgen_backend/internal/config"
	"litgen_backend/internal/controller"
	"litgen_backend/internal/repository"
	"litgen_backend/internal/service"
	"litgen_backend/pkg/configwatcher"
	"litgen_backend/pkg/database"
	"litgen_backend/pkg/logger"
	"litgen_backend/pkg/monitoring"
	"litgen_backend/pkg/security"
	"litgen_backend/pkg/tracing"

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
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	standard *repository.StandardRepository
	text     *repository.TextRepository
	question *repository.QuestionRepository
}

type services struct {
	ai         *service.AIService
	auth       *service.AuthService
	standard   *service.StandardService
	generation *service.GenerationService
	question   *service.QuestionService
	export     *service.ExportService
}

type controllers struct {
	auth       *controller.AuthController
	standard   *controller.StandardController
	generation *controller.GenerationController
	question   *controller.QuestionController
	export     *controller.ExportController
	health     *controller.HealthController
}

// RegisterConfigCallback subscribes to config file reloads. Callbacks
// run on the watcher goroutine.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		standard: repository.NewStandardRepository(db),
		text:     repository.NewTextRepository(db),
		question: repository.NewQuestionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.auth = service.NewAuthService(repos.user, cfg.JWT)
	s.standard = service.NewStandardService(repos.standard, rdb)
	s.generation = service.NewGenerationService(s.ai, s.standard, repos.text)
	s.question = service.NewQuestionService(s.ai, s.standard, repos.question, repos.text)

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Warn("storage provider unavailable, export copies disabled", zap.Error(err))
		storage = nil
	}
	s.export = service.NewExportService(cfg.Export, storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		standard:   controller.NewStandardController(s.standard),
		generation: controller.NewGenerationController(s.generation),
		question:   controller.NewQuestionController(s.question),
		export:     controller.NewExportController(s.export),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.SeedStandards(db); err != nil {
		logger.Log.Fatal("Failed to seed standards", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Standards caching is an optimization; run without it.
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	ctrls := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("litgen-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	// Hot-reload the model endpoint settings on config file changes so
	// API keys can rotate without a restart.
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.ai.UpdateConfig(newCfg.AI)
	})
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

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
