package routes

import (
	"context"
	"net/http"
	"time"

	"todolist-be/internal/controllers"
	"todolist-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies bundles what the router needs to mount every endpoint
type Dependencies struct {
	Auth        *controllers.AuthController
	Todos       *controllers.TodoController
	RequireAuth gin.HandlerFunc
	DB          Pinger
	CORSOrigins []string
}

// NewRouter builds the engine with recovery, request logging and CORS, then
// mounts the public, auth and todo routes.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", welcome)
	r.GET("/health", health(deps.DB))

	api := r.Group("/api")
	SetupAuthRoutes(api, deps.Auth, deps.RequireAuth)
	SetupTodoRoutes(api, deps.Todos)

	return r
}

// SetupAuthRoutes mounts /auth; only /auth/me requires a token.
func SetupAuthRoutes(api *gin.RouterGroup, ac *controllers.AuthController, requireAuth gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.GET("/me", requireAuth, ac.Me)
	}
}

// SetupTodoRoutes mounts /todos. Todos are a shared public list, so none of
// these routes take the auth middleware.
func SetupTodoRoutes(api *gin.RouterGroup, tc *controllers.TodoController) {
	todos := api.Group("/todos")
	{
		todos.GET("", tc.ListTodos)
		todos.POST("", tc.CreateTodo)
		todos.DELETE("", tc.DeleteAllTodos)
		todos.GET("/search", tc.SearchTodos)
		todos.GET("/:id", tc.GetTodo)
		todos.PUT("/:id", tc.UpdateTodo)
		todos.DELETE("/:id", tc.DeleteTodo)
	}
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to TodoList API",
		"docs":    "/docs",
		"redoc":   "/redoc",
	})
}

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
