package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/tgzgondoz/family-fitness-gym/internal/auth"
	"github.com/tgzgondoz/family-fitness-gym/internal/checkin"
	"github.com/tgzgondoz/family-fitness-gym/internal/config"
	"github.com/tgzgondoz/family-fitness-gym/internal/member"
	"github.com/tgzgondoz/family-fitness-gym/internal/membership"
	"github.com/tgzgondoz/family-fitness-gym/internal/notification"
	"github.com/tgzgondoz/family-fitness-gym/internal/sale"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, dispatcher *notification.Dispatcher) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo, cfg.JWTSecret)
	memberHandler := member.NewHandler(memberService)

	notifRepo := notification.NewRepository(db)
	notifService := notification.NewService(notifRepo, dispatcher)
	notifHandler := notification.NewHandler(notifRepo)

	catalog := membership.NewCatalog(cfg.DailyPriceCents, cfg.MonthlyPriceCents, cfg.TrainerPriceCents)
	membershipRepo := membership.NewRepository(db)
	membershipService := membership.NewService(membershipRepo, catalog, notifService)
	membershipHandler := membership.NewHandler(membershipService)

	checkinService := checkin.NewService(checkin.NewRepository(db))
	checkinHandler := checkin.NewHandler(checkinService)

	saleHandler := sale.NewHandler(sale.NewRepository(db))

	public := router.Group("/auth")
	{
		public.POST("/register", memberHandler.Register)
		public.POST("/login", memberHandler.Login)
		public.POST("/refresh", memberHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", memberHandler.GetMe)
		protected.POST("/me/push-token", memberHandler.RegisterPushToken)
		protected.GET("/me/stats", checkinHandler.MyStats)

		protected.GET("/plans", membershipHandler.ListPlans)
		protected.GET("/subscriptions/me", membershipHandler.MyAccessState)
		protected.GET("/subscriptions/history", membershipHandler.MyHistory)
		protected.POST("/subscriptions", membershipHandler.Purchase)

		protected.GET("/notifications", notifHandler.List)
		protected.POST("/notifications/:id/read", notifHandler.MarkRead)
		protected.POST("/notifications/read-all", notifHandler.MarkAllRead)
		protected.DELETE("/notifications/:id", notifHandler.Delete)
	}

	staff := router.Group("/staff")
	staff.Use(authMiddleware, auth.RequireRole(auth.RoleStaff, auth.RoleManager))
	{
		staff.POST("/checkins", checkinHandler.Record)
		staff.GET("/checkins", checkinHandler.List)
		staff.POST("/sales", saleHandler.Record)
		staff.GET("/sales", saleHandler.List)
		staff.POST("/subscriptions", membershipHandler.StaffPurchase)
		staff.POST("/subscriptions/:id/cancel", membershipHandler.Cancel)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleManager))
	{
		admin.POST("/members", memberHandler.CreateStaff)
		admin.GET("/members", memberHandler.ListMembers)
		admin.PATCH("/members/:id/role", memberHandler.ChangeRole)
		admin.POST("/members/:id/deactivate", memberHandler.Deactivate)
		admin.GET("/analytics", saleHandler.Analytics)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router is exposed for handler-level tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
