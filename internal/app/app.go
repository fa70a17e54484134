package app

import (
	"context"
	"devita_backend/internal/config"
	"devita_backend/internal/controller"
	"devita_backend/internal/model"
	"devita_backend/internal/repository"
	"devita_backend/internal/service"
	"devita_backend/pkg/cache"
	"devita_backend/pkg/database"
	"devita_backend/pkg/logger"
	"devita_backend/pkg/monitoring"
	"devita_backend/pkg/security"
	"devita_backend/pkg/tracing"
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
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Loc      *time.Location
	services *services
}

type repositories struct {
	user     *repository.UserRepository
	reward   *repository.RewardRepository
	todo     *repository.TodoRepository
	category *repository.CategoryRepository
	post     *repository.PostRepository
	follow   *repository.FollowRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	reward   *service.RewardService
	todo     *service.TodoService
	category *service.CategoryService
	post     *service.PostService
	follow   *service.FollowService
	mission  *service.MissionService
	likeSync *service.LikeSyncService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	reward   *controller.RewardController
	todo     *controller.TodoController
	category *controller.CategoryController
	post     *controller.PostController
	follow   *controller.FollowController
	mission  *controller.MissionController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		reward:   repository.NewRewardRepository(db),
		todo:     repository.NewTodoRepository(db),
		category: repository.NewCategoryRepository(db),
		post:     repository.NewPostRepository(db),
		follow:   repository.NewFollowRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	counter := cache.NewRedisStore(rdb)

	s := &services{}
	s.auth = service.NewAuthService(repos.user, rdb, cfg.OAuth, cfg.JWT)
	s.reward = service.NewRewardService(repos.reward, counter, a.Loc)
	s.user = service.NewUserService(repos.user, repos.reward)
	s.category = service.NewCategoryService(repos.category)
	s.todo = service.NewTodoService(repos.todo, repos.category, s.reward, a.Loc)
	s.post = service.NewPostService(repos.post, counter)
	s.follow = service.NewFollowService(repos.follow, repos.user, rdb)
	s.mission = service.NewMissionService(repos.user, repos.todo, repos.category, cfg.AI, a.Loc)
	s.likeSync = service.NewLikeSyncService(repos.post, counter)
	return s
}

func (a *App) initControllers(s *services, cfg *config.Config, db *gorm.DB) *controllers {
	refreshMaxAge := int(cfg.JWT.RefreshExpire / time.Second)
	return &controllers{
		auth:     controller.NewAuthController(s.auth, s.category, cfg.Server.FrontRedirectURL, refreshMaxAge),
		user:     controller.NewUserController(s.user),
		reward:   controller.NewRewardController(s.reward),
		todo:     controller.NewTodoController(s.todo),
		category: controller.NewCategoryController(s.category),
		post:     controller.NewPostController(s.post),
		follow:   controller.NewFollowController(s.follow),
		mission:  controller.NewMissionController(s.mission),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
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

// runDailyAt fires job once a day at hour:minute in loc.
func runDailyAt(loc *time.Location, hour, minute int, job func()) {
	go func() {
		for {
			now := time.Now().In(loc)
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
			if !next.After(now) {
				next = next.AddDate(0, 0, 1)
			}
			time.Sleep(next.Sub(now))
			job()
		}
	}()
}

func (a *App) startBackgroundTasks(s *services) {
	// Midnight: drain cached like counters into MySQL.
	runDailyAt(a.Loc, 0, 0, func() {
		if _, err := s.likeSync.Run(context.Background()); err != nil {
			logger.Log.Error("like sync run failed", zap.Error(err))
		}
	})

	// 21:05: create tomorrow-facing daily mission todos for every user.
	runDailyAt(a.Loc, 21, 5, func() {
		s.mission.CreateDailyMissions(context.Background())
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	if err := model.ValidateMissionPolicies(); err != nil {
		logger.Log.Fatal("Invalid mission policy table", zap.Error(err))
	}

	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		logger.Log.Fatal("Invalid server timezone", zap.Error(err))
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Loc:    loc,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, cfg, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("devita-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	app.startBackgroundTasks(services)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
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

	logger.Log.Sync()
	log.Println("Server exiting")
}
