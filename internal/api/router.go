package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/castingdesk/casting-api/internal/api/handler"
	"github.com/castingdesk/casting-api/internal/api/middleware"
	"github.com/castingdesk/casting-api/internal/core/ports"
	"github.com/castingdesk/casting-api/internal/core/service"
	mongorepo "github.com/castingdesk/casting-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/castingdesk/casting-api/internal/infrastructure/db/redis"
	"github.com/castingdesk/casting-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, dispatcher ports.MailDispatcher, google ports.IdentityResolver, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("casting"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	auditionRepo := mongorepo.NewAuditionRepository(db)
	limiter := redisinfra.NewCooldownLimiter(rdb, time.Minute)

	authService := service.NewAuthService(userRepo, google, dispatcher, limiter, service.AuthConfig{
		JWTSecret:        cfg.JWTSecret,
		BcryptCost:       cfg.BcryptCost,
		ResetPasswordURL: cfg.ResetPasswordURL,
	}, log)
	profileService := service.NewProfileService(userRepo, log)
	auditionService := service.NewAuditionService(auditionRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	auditionHandler := handler.NewAuditionHandler(auditionService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Root and observability ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the api")
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Account routes ---
	user := e.Group("/api/user")
	user.POST("/register", authHandler.Register)
	user.POST("/verify-otp", authHandler.VerifyOTP)
	user.POST("/resend-otp", authHandler.ResendOTP)
	user.POST("/login", authHandler.Login)
	user.POST("/google", authHandler.GoogleAuth)
	user.POST("/forget-password", authHandler.ResetPassword)
	user.POST("/send-forget-password", authHandler.SendResetLink)
	user.GET("/get-details", profileHandler.GetDetails, authMiddleware)
	// POST is the contract clients were built against; PUT is accepted too.
	user.POST("/update-profile", profileHandler.UpdateProfile, authMiddleware)
	user.PUT("/update-profile", profileHandler.UpdateProfile, authMiddleware)

	// --- Audition routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/create-audition", auditionHandler.Create, authMiddleware)
	apiGroup.GET("/get-all", auditionHandler.GetAll)
	apiGroup.GET("/get-all/:id", auditionHandler.GetByID)
	apiGroup.GET("/get-all-user/:userId", auditionHandler.GetByUser)
	apiGroup.PUT("/update-audi/:id", auditionHandler.Update, authMiddleware)
	apiGroup.DELETE("/delete-audi/:id", auditionHandler.Delete, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
