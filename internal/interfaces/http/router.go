// Package http wires the HTTP surface: repositories, use cases, handlers and
// routes, assembled from configuration.
package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUsecases "gurukul/internal/application/catalog/usecases"
	"gurukul/internal/application/checkout/paymentgateway"
	checkoutUsecases "gurukul/internal/application/checkout/usecases"
	"gurukul/internal/infrastructure/cache"
	"gurukul/internal/infrastructure/config"
	"gurukul/internal/infrastructure/email"
	"gurukul/internal/infrastructure/repository"
	"gurukul/internal/interfaces/http/handlers"
	"gurukul/internal/interfaces/http/middleware"
	"gurukul/internal/interfaces/http/routes"
	"gurukul/internal/shared/logger"
	"gurukul/internal/shared/markdown"
	"gurukul/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine            *gin.Engine
	checkoutHandler   *handlers.CheckoutHandler
	courseHandler     *handlers.CourseHandler
	enrollmentHandler *handlers.EnrollmentHandler
	authMiddleware    *middleware.AuthMiddleware
	redisClient       *redis.Client
	logger            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	// Repositories
	courseRepo := repository.NewCourseRepository(db, log)
	enrollmentRepo := repository.NewEnrollmentRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	// Redis-backed catalog cache
	redisClient := newRedisClient(cfg, log)
	cachedCourseRepo := cache.NewCachedCourseRepository(
		courseRepo,
		redisClient,
		time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second,
		log,
	)

	// Gateway
	gateway := paymentgateway.NewRazorpayGateway(paymentgateway.RazorpayConfig{
		KeyID:      cfg.Razorpay.KeyID,
		KeySecret:  cfg.Razorpay.KeySecret,
		APIBaseURL: cfg.Razorpay.APIBaseURL,
	}, log)

	// Use cases
	createOrderUC := checkoutUsecases.NewCreateOrderUseCase(cachedCourseRepo, gateway, cfg.Razorpay.Currency, log)
	grantUC := checkoutUsecases.NewGrantEntitlementUseCase(cachedCourseRepo, userRepo, enrollmentRepo, log)
	verifyPaymentUC := checkoutUsecases.NewVerifyPaymentUseCase(grantUC, cachedCourseRepo, cfg.Razorpay.KeySecret, log)
	verifyPaymentUC.SetNotifier(email.NewSMTPNotifier(&cfg.Email, log))
	listEntitlementsUC := checkoutUsecases.NewListEntitlementsUseCase(enrollmentRepo, log)
	evaluateAccessUC := checkoutUsecases.NewEvaluateAccessUseCase(enrollmentRepo, log)
	revokeUC := checkoutUsecases.NewRevokeEntitlementUseCase(enrollmentRepo, log)

	listCoursesUC := catalogUsecases.NewListCoursesUseCase(cachedCourseRepo, log)
	getCourseUC := catalogUsecases.NewGetCourseUseCase(cachedCourseRepo, markdown.NewService(), log)

	// Handlers
	checkoutHandler := handlers.NewCheckoutHandler(createOrderUC, verifyPaymentUC, log)
	courseHandler := handlers.NewCourseHandler(listCoursesUC, getCourseUC, log)
	enrollmentHandler := handlers.NewEnrollmentHandler(
		listEntitlementsUC, evaluateAccessUC, grantUC, revokeUC, log)

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret, log)

	return &Router{
		engine:            engine,
		checkoutHandler:   checkoutHandler,
		courseHandler:     courseHandler,
		enrollmentHandler: enrollmentHandler,
		authMiddleware:    authMiddleware,
		redisClient:       redisClient,
		logger:            log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", nil)
	})

	routes.SetupCourseRoutes(r.engine, &routes.CourseRouteConfig{
		CourseHandler: r.courseHandler,
	})
	routes.SetupCheckoutRoutes(r.engine, &routes.CheckoutRouteConfig{
		CheckoutHandler: r.checkoutHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupEnrollmentRoutes(r.engine, &routes.EnrollmentRouteConfig{
		EnrollmentHandler: r.enrollmentHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Close releases router-held resources
func (r *Router) Close() error {
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}

func newRedisClient(cfg *config.Config, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// The catalog cache degrades to the database on every miss, so a
		// missing Redis is a warning, not a startup failure.
		log.Warnw("redis unreachable, catalog cache disabled in effect", "error", err)
	} else {
		log.Infow("redis connection established")
	}

	return client
}
