package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"shorturl-be/internal/config"
	"shorturl-be/internal/controllers"
	"shorturl-be/internal/jwt"
	"shorturl-be/internal/middleware"
	"shorturl-be/internal/service"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	cfg        *config.Config
	logger     *httplog.Logger
	db         Pinger
	jwtService *jwt.JWTService

	authController      *controllers.AuthController
	shortenerController *controllers.ShortenerController
	qrcodeController    *controllers.QRCodeController
}

func New(
	cfg *config.Config,
	logger *httplog.Logger,
	db Pinger,
	jwtService *jwt.JWTService,
	authService service.AuthService,
	urlService service.URLService,
) *Server {
	return &Server{
		cfg:                 cfg,
		logger:              logger,
		db:                  db,
		jwtService:          jwtService,
		authController:      controllers.NewAuthController(authService, cfg.CookieSecure),
		shortenerController: controllers.NewShortenerController(urlService),
		qrcodeController:    controllers.NewQRCodeController(urlService),
	}
}

// Handler returns the full HTTP handler: request logging, then CORS, then the gin routes.
func (s *Server) Handler() (http.Handler, error) {
	router, err := s.RegisterRoutes()
	if err != nil {
		return nil, err
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: s.cfg.AllowCredentials,
		MaxAge:           300,
	})

	return httplog.RequestLogger(s.logger)(corsHandler(router)), nil
}

func (s *Server) RegisterRoutes() (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())

	if err := router.SetTrustedProxies(s.cfg.TrustedProxies); err != nil {
		return nil, err
	}

	// Health check endpoint
	router.GET("/health", s.healthHandler)

	auth := router.Group("/auth")
	{
		auth.POST("/register", s.authController.Register)
		auth.POST("/login", s.authController.Login)
		auth.POST("/logout", s.authController.Logout)
	}

	// Public routes
	router.GET("/:shortCode", s.shortenerController.RedirectToURL)
	router.GET("/qrcode/:shortCode", s.qrcodeController.GenerateQRCode)

	// Protected routes - require a session token
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(s.jwtService))
	{
		protected.POST("/shorten", s.shortenerController.CreateShortURL)
		protected.GET("/history/:shorturlId", s.shortenerController.GetHistory)
		protected.GET("/user/history", s.shortenerController.GetUserHistory)
		protected.DELETE("/:shorturlId", s.shortenerController.DeleteURL)
	}

	return router, nil
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
