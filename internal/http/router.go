package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/solodev/soloquest/internal/auth"
	"github.com/solodev/soloquest/internal/config"
	"github.com/solodev/soloquest/internal/domain/user"
	"github.com/solodev/soloquest/internal/http/handlers"
	"github.com/solodev/soloquest/internal/http/middlewares"
	"github.com/solodev/soloquest/internal/observability"
	"github.com/solodev/soloquest/internal/store"
)

func NewRouter(
	cfg config.Config,
	log *slog.Logger,
	st *store.Store,
	tokens *auth.Manager,
	prom *observability.Prom,
	reg *prometheus.Registry,
) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("soloquest"))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "If-None-Match"},
		ExposeHeaders:    []string{"ETag", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.MaxBodyBytes(1 << 20))
	r.Use(middlewares.RequireJSON())
	r.Use(prom.GinHandleMiddleware())

	// health + metrics
	mode := func() string {
		ctx, cancel := config.WithTimeout(1 * time.Second)
		defer cancel()

		if st.StoreBacked(ctx) {
			return "database"
		}
		return "memory"
	}
	health := handlers.NewHealthHandler(func() error {
		ctx, cancel := config.WithTimeout(1 * time.Second)
		defer cancel()
		return st.Ping(ctx)
	}, mode)

	r.GET("/healthz", health.Healthz)
	r.GET("/readyz", health.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	authmw := middlewares.NewAuthMiddleware(tokens)

	// auth
	loginLimiter := middlewares.NewRateLimiter(10, time.Minute)
	authHandler := handlers.NewAuthHandler(st)

	r.POST("/auth/login", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Login)
	r.GET("/auth/me", authmw.RequireAuth(), authHandler.Me)

	// projects + tasks
	projectsHandler := handlers.NewProjectsHandler(st)
	tasksHandler := handlers.NewTasksHandler(st)

	r.GET("/projects", projectsHandler.ListProjects)
	r.GET("/projects/:id", projectsHandler.GetProject)
	r.POST("/projects", authmw.RequireAuth(), projectsHandler.CreateProject)
	r.PUT("/projects/:id", authmw.RequireAuth(), projectsHandler.UpdateProject)
	r.DELETE("/projects/:id", authmw.RequireAuth(), projectsHandler.DeleteProject)

	r.POST("/projects/:id/tasks", authmw.RequireAuth(), tasksHandler.CreateTask)
	r.PUT("/projects/:id/tasks/:taskId", authmw.RequireAuth(), tasksHandler.UpdateTask)
	r.DELETE("/projects/:id/tasks/:taskId", authmw.RequireAuth(), tasksHandler.DeleteTask)

	// stats (dashboard + statistics pages)
	statsHandler := handlers.NewStatsHandler(st)
	r.GET("/stats", statsHandler.GetStats)

	// user management (settings page), admin only
	usersHandler := handlers.NewUsersHandler(st)
	admin := r.Group("/users", authmw.RequireAuth(), authmw.RequireRole(user.RoleAdmin))
	admin.GET("", usersHandler.ListUsers)
	admin.GET("/:id", usersHandler.GetUser)
	admin.POST("", usersHandler.CreateUser)
	admin.PUT("/:id", usersHandler.UpdateUser)
	admin.DELETE("/:id", usersHandler.DeleteUser)

	return r
}
