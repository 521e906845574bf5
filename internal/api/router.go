package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avelinom/vidgate/internal/api/handler"
	customMiddleware "github.com/avelinom/vidgate/internal/api/middleware"
	"github.com/avelinom/vidgate/internal/config"
	mongorepo "github.com/avelinom/vidgate/internal/repository/mongo"
	redisrepo "github.com/avelinom/vidgate/internal/repository/redis"
	"github.com/avelinom/vidgate/internal/security"
	"github.com/avelinom/vidgate/internal/service"
)

// NewRouter creates and configures the HTTP router. A nil redisClient
// disables the dashboard cache and login rate limiting; everything else
// works without Redis.
func NewRouter(cfg *config.Config, db *mongorepo.Client, redisClient *redisrepo.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Security components
	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := security.NewPasswordHasher(cfg.Auth.BcryptCost)

	// Repositories
	userRepo := mongorepo.NewUserRepository(db)
	videoRepo := mongorepo.NewVideoRepository(db)

	// Optional Redis-backed components
	var dashboardCache service.DashboardCache
	var rateLimit func(http.Handler) http.Handler
	if redisClient != nil {
		dashboardCache = redisrepo.NewDashboardCache(redisClient)
		limiter := redisrepo.NewRateLimiter(
			redisClient,
			cfg.Security.RateLimit.RequestsPerMinute,
			cfg.Security.RateLimit.Burst,
		)
		rateLimit = customMiddleware.NewRateLimitMiddleware(limiter).Limit
	}

	// Services
	authService := service.NewAuthService(userRepo, hasher, jwtManager)
	videoService := service.NewVideoService(
		videoRepo,
		dashboardCache,
		cfg.Catalog.DashboardLimit,
		cfg.Catalog.EmbedBaseURL,
	)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	videoHandler := handler.NewVideoHandler(videoService)

	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)

	// Public routes
	r.Get("/", handler.Home)
	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(db))

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if rateLimit != nil {
				r.Use(rateLimit)
			}
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})
	})

	// Protected catalog routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/dashboard", videoHandler.Dashboard)
		r.Get("/video/{videoID}", videoHandler.GetVideo)
	})

	return r
}
