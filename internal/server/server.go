package server

import (
	"strings"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/handler"
	"staffhub/internal/middleware"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, mailer service.MailDispatcher, logger *logrus.Logger) *Server {
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	updateRepo := repository.NewDailyUpdateRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	userSvc := service.NewUserService(userRepo, mailer)
	userHandler := handler.NewUserHandler(userSvc)

	hoursSvc := service.NewHoursService(userRepo, updateRepo, summaryRepo, redisClient)
	summaryHandler := handler.NewSummaryHandler(hoursSvc, redisClient)

	todoSvc := service.NewTodoService(todoRepo)
	todoHandler := handler.NewTodoHandler(todoSvc)

	updateSvc := service.NewDailyUpdateService(updateRepo, hoursSvc)
	updateHandler := handler.NewDailyUpdateHandler(updateSvc)

	projectSvc := service.NewProjectService(projectRepo)
	projectHandler := handler.NewProjectHandler(projectSvc)

	leaveSvc := service.NewLeaveService(leaveRepo)
	leaveHandler := handler.NewLeaveHandler(leaveSvc)

	statsSvc := service.NewStatsService(userRepo, projectRepo, todoRepo, updateRepo)
	statsHandler := handler.NewStatsHandler(statsSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/verify/:token", authHandler.VerifyEmail)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// User management: admins and PMs only; who exactly they may touch
		// is decided by the service scoping.
		users := protected.Group("/users")
		users.Use(authMiddleware.RequireRole(model.RoleAdmin, model.RolePM))
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Profile routes
		protected.GET("/profile/me", userHandler.GetProfile)
		protected.PUT("/profile", userHandler.UpdateProfile)

		// Todo routes
		protected.POST("/todos", todoHandler.Create)
		protected.GET("/todos", todoHandler.List)
		protected.GET("/todos/:id", todoHandler.Get)
		protected.PUT("/todos/:id", todoHandler.Update)
		protected.DELETE("/todos/:id", todoHandler.Delete)

		// Daily update routes
		protected.POST("/daily-updates", updateHandler.Create)
		protected.GET("/daily-updates", updateHandler.List)
		protected.GET("/daily-updates/:id", updateHandler.Get)
		protected.PUT("/daily-updates/:id", updateHandler.Update)
		protected.DELETE("/daily-updates/:id", updateHandler.Delete)

		// Project routes
		protected.POST("/projects", projectHandler.Create)
		protected.GET("/projects", projectHandler.List)
		protected.GET("/projects/:id", projectHandler.Get)
		protected.PUT("/projects/:id", projectHandler.Update)
		protected.DELETE("/projects/:id", projectHandler.Delete)

		// Leave routes
		protected.POST("/leaves", leaveHandler.Create)
		protected.GET("/leaves", leaveHandler.List)
		protected.GET("/leaves/:id", leaveHandler.Get)
		protected.PUT("/leaves/:id/decide", leaveHandler.Decide)
		protected.DELETE("/leaves/:id", leaveHandler.Delete)

		// Team working-hours summaries
		summaries := protected.Group("/summaries")
		summaries.Use(authMiddleware.RequireRole(model.RoleAdmin, model.RolePM))
		{
			summaries.GET("/team", summaryHandler.TeamHours)
			summaries.GET("/ws", summaryHandler.HandleWebSocket)
		}

		// Stats routes
		admin := protected.Group("/admin")
		admin.Use(authMiddleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/stats", statsHandler.AdminStats)
		}
		protected.GET("/dashboard", statsHandler.EmployeeDashboard)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
