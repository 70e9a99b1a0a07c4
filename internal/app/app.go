package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career_advisor_backend/internal/config"
	"career_advisor_backend/internal/controller"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/service"
	"career_advisor_backend/pkg/database"
	"career_advisor_backend/pkg/logger"
	"career_advisor_backend/pkg/monitoring"
	"career_advisor_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	session        *repository.SessionRepository
	profile        *repository.ProfileRepository
	assessment     *repository.AssessmentRepository
	streak         *repository.StreakRepository
	task           *repository.TaskRepository
	progress       *repository.ProgressRepository
	rating         *repository.RatingRepository
	recommendation *repository.RecommendationRepository
	resource       *repository.ResourceRepository
}

type services struct {
	session        *service.SessionService
	profile        *service.ProfileService
	assessment     *service.AssessmentService
	streak         *service.StreakService
	task           *service.TaskService
	progress       *service.ProgressService
	rating         *service.RatingService
	recommendation *service.RecommendationService
	resource       *service.ResourceService
	chat           *service.ChatService
}

type controllers struct {
	profile        *controller.ProfileController
	assessment     *controller.AssessmentController
	streak         *controller.StreakController
	task           *controller.TaskController
	progress       *controller.ProgressController
	rating         *controller.RatingController
	recommendation *controller.RecommendationController
	resource       *controller.ResourceController
	chat           *controller.ChatController
	health         *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		session:        repository.NewSessionRepository(db),
		profile:        repository.NewProfileRepository(db),
		assessment:     repository.NewAssessmentRepository(db),
		streak:         repository.NewStreakRepository(db),
		task:           repository.NewTaskRepository(db),
		progress:       repository.NewProgressRepository(db),
		rating:         repository.NewRatingRepository(db),
		recommendation: repository.NewRecommendationRepository(db),
		resource:       repository.NewResourceRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		session:        service.NewSessionService(repos.session),
		profile:        service.NewProfileService(repos.profile),
		assessment:     service.NewAssessmentService(repos.assessment, repos.profile),
		streak:         service.NewStreakService(repos.streak),
		task:           service.NewTaskService(repos.task),
		progress:       service.NewProgressService(repos.progress, repos.resource),
		rating:         service.NewRatingService(repos.rating, repos.resource),
		recommendation: service.NewRecommendationService(repos.recommendation),
		resource:       service.NewResourceService(repos.resource, cfg, rdb),
		chat:           service.NewChatService(),
	}
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		profile:        controller.NewProfileController(s.profile),
		assessment:     controller.NewAssessmentController(s.assessment),
		streak:         controller.NewStreakController(s.streak),
		task:           controller.NewTaskController(s.task),
		progress:       controller.NewProgressController(s.progress),
		rating:         controller.NewRatingController(s.rating),
		recommendation: controller.NewRecommendationController(s.recommendation),
		resource:       controller.NewResourceController(s.resource),
		chat:           controller.NewChatController(s.chat),
		health:         controller.NewHealthController(db),
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The catalog cache is an optimization; run without it.
		logger.Log.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := initRepositories(db)
	svcs := initServices(repos, cfg, rdb)
	ctrls := initControllers(svcs, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("career-advisor", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		router.Use(tracing.GinMiddleware())
	}

	app.registerRoutes(router, ctrls, svcs)

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
