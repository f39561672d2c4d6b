package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/internal/controller"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/service"
	"daily_quiz_backend/pkg/database"
	"daily_quiz_backend/pkg/logger"
	"daily_quiz_backend/pkg/monitoring"
	"daily_quiz_backend/pkg/security"
	"daily_quiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user         *repository.UserRepository
	question     *repository.QuestionRepository
	category     *repository.CategoryRepository
	position     *repository.PositionRepository
	city         *repository.CityRepository
	institution  *repository.InstitutionRepository
	quiz         *repository.QuizRepository
	notification *repository.NotificationRepository
	feedback     *repository.FeedbackRepository
}

type services struct {
	email     *service.EmailService
	storage   *service.StorageService
	media     *service.MediaService
	auth      *service.AuthService
	quiz      *service.QuizService
	question  *service.QuestionService
	catalog   *service.CatalogService
	user      *service.UserService
	stats     *service.StatsService
	report    *service.ReportService
	scheduler *service.SchedulerService
}

type controllers struct {
	auth    *controller.AuthController
	quiz    *controller.QuizController
	catalog *controller.CatalogController
	user    *controller.UserController
	admin   *controller.AdminController
	media   *controller.MediaController
	health  *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		question:     repository.NewQuestionRepository(db),
		category:     repository.NewCategoryRepository(db),
		position:     repository.NewPositionRepository(db),
		city:         repository.NewCityRepository(db),
		institution:  repository.NewInstitutionRepository(db),
		quiz:         repository.NewQuizRepository(db),
		notification: repository.NewNotificationRepository(db),
		feedback:     repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.email = service.NewEmailService(cfg)
	s.storage = service.NewStorageService(cfg)
	s.media = service.NewMediaService(s.storage)
	s.auth = service.NewAuthService(repos.user, s.email, cfg)
	s.quiz = service.NewQuizService(repos.quiz, repos.question, repos.category, repos.user, repos.notification, s.email, rdb, cfg)
	s.question = service.NewQuestionService(repos.question, repos.category, repos.user)
	s.catalog = service.NewCatalogService(repos.position, repos.city, repos.institution, repos.category, repos.question)
	s.user = service.NewUserService(repos.user, repos.notification, repos.feedback)
	s.stats = service.NewStatsService(repos.user, repos.quiz, repos.question, repos.category)
	s.report = service.NewReportService(repos.user, repos.quiz)
	s.scheduler = service.NewSchedulerService(s.quiz, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		quiz:    controller.NewQuizController(s.quiz),
		catalog: controller.NewCatalogController(s.catalog, s.question),
		user:    controller.NewUserController(s.user, s.stats),
		admin:   controller.NewAdminController(s.question, s.catalog, s.user, s.stats, s.quiz, s.report),
		media:   controller.NewMediaController(s.media),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(cfg)
	if err != nil {
		// The service degrades gracefully without redis: leaderboard reads
		// just skip the cache.
		logger.Log.Warn("Failed to initialize redis, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer(cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	services.scheduler.Start()

	return app
}

// ApplyConfig hot-applies the reloadable subset of a freshly loaded config.
// Schedule hours and mail settings take effect on the next scheduler tick;
// server, database and middleware settings require a restart.
func (a *App) ApplyConfig(fresh *config.Config) {
	a.Config.Quiz = fresh.Quiz
	a.Config.Email = fresh.Email
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

	if a.services != nil && a.services.scheduler != nil {
		a.services.scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Sync()
	log.Println("Server exiting")
}
