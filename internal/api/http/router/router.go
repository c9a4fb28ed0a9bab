package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/univc/portfolio-server/internal/api/http/handler"
	"github.com/univc/portfolio-server/internal/api/http/middleware"
	"github.com/univc/portfolio-server/internal/config"
	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
	"github.com/univc/portfolio-server/internal/service"
)

// Router wires services, middleware and handlers into an echo instance.
type Router struct {
	cfg            *config.Config
	authService    *service.Auth
	userService    *service.User
	tokenService   *service.Token
	mediaService   *service.Media
	courseService  *service.Course
	levelService   *service.Level
	projectService *service.Project
	contextManager model.ContextManager
	logger         *logger.Logger
}

func New(
	cfg *config.Config,
	authService *service.Auth,
	userService *service.User,
	tokenService *service.Token,
	mediaService *service.Media,
	courseService *service.Course,
	levelService *service.Level,
	projectService *service.Project,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		cfg:            cfg,
		authService:    authService,
		userService:    userService,
		tokenService:   tokenService,
		mediaService:   mediaService,
		courseService:  courseService,
		levelService:   levelService,
		projectService: projectService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the echo instance with all routes and middleware attached.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewErrorHandler(r.logger)

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	e.Use(echomw.Recover())
	e.Use(logging.Handle)
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: r.cfg.HTTP.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	authHandler := handler.NewAuth(r.authService, r.userService, r.tokenService, r.contextManager, r.logger)
	userHandler := handler.NewUser(r.userService, r.mediaService, r.contextManager, r.logger)
	courseHandler := handler.NewCourse(r.courseService, r.logger)
	levelHandler := handler.NewLevel(r.levelService, r.logger)
	projectHandler := handler.NewProject(r.projectService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.cfg.Environment)

	e.GET("/health", healthHandler.Check)

	authGroup := e.Group("/auth")
	authGroup.POST("/register/step1", authHandler.RegisterStep1)
	authGroup.POST("/register/step2", authHandler.RegisterStep2, authenticate.Handle)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.POST("/logout-all", authHandler.LogoutAll, authenticate.Handle)

	users := e.Group("/users", authenticate.Handle)
	users.GET("/me", userHandler.Me)
	users.POST("/me/avatar", userHandler.UploadAvatar)

	courses := e.Group("/courses")
	courses.GET("", courseHandler.List)
	courses.GET("/:id", courseHandler.Get)
	courses.POST("", courseHandler.Create, authenticate.Handle)
	courses.PATCH("/:id", courseHandler.Update, authenticate.Handle)
	courses.PUT("/:id/enabled", courseHandler.SetEnabled, authenticate.Handle)

	levels := e.Group("/levels")
	levels.GET("", levelHandler.List)
	levels.GET("/:id", levelHandler.Get)
	levels.POST("", levelHandler.Create, authenticate.Handle)
	levels.PATCH("/:id", levelHandler.Update, authenticate.Handle)
	levels.DELETE("/:id", levelHandler.Delete, authenticate.Handle)

	projects := e.Group("/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("", projectHandler.Create, authenticate.Handle)
	projects.PATCH("/:id", projectHandler.Update, authenticate.Handle)
	projects.DELETE("/:id", projectHandler.Delete, authenticate.Handle)

	return e
}
