package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskcase/task-api/internal/api/handler"
	"github.com/taskcase/task-api/internal/api/middleware"
	"github.com/taskcase/task-api/internal/core/ports"
	"github.com/taskcase/task-api/internal/core/service"
	mongodb "github.com/taskcase/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskcase/task-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil: the identity cache is then disabled and the resolver goes
// straight to storage on every request.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)

	var userCache ports.UserCache
	if rdb != nil {
		userCache = redisdb.NewUserCache(rdb)
	}

	hasher := service.NewBcryptHasher(0) // 0 → bcrypt.DefaultCost
	tokenService := service.NewTokenService(jwtSecret)
	resolver := service.NewIdentityResolver(tokenService, userRepo, userCache, log)
	authService := service.NewAuthService(userRepo, hasher, tokenService, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	statusHandler := handler.NewStatusHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- Public routes ---
	e.GET("/", statusHandler.Root)
	e.GET("/health", statusHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	tasks := e.Group("/tasks", middleware.Auth(resolver))
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return e
}
