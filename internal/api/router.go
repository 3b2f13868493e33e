package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thaalam/admin-system/internal/api/handler"
	"github.com/thaalam/admin-system/internal/api/middleware"
	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
	"github.com/thaalam/admin-system/internal/core/service"
	mongodb "github.com/thaalam/admin-system/internal/infrastructure/db/mongo"
	redisdb "github.com/thaalam/admin-system/internal/infrastructure/db/redis"
)

// RouterConfig carries everything NewRouter needs to assemble the API.
type RouterConfig struct {
	DB         *mongo.Database
	Redis      *redis.Client
	JWTSecret  string
	SessionTTL time.Duration
	PageSize   int
	UploadDir  string
	UploadMax  int64
	MediaQueue ports.MediaQueue
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("thaalam"))

	// --- Dependencies ---
	sessions := redisdb.NewSessionStore(cfg.Redis, cfg.SessionTTL)
	members := mongodb.NewMemberRepository(cfg.DB)
	media := service.NewMediaService(cfg.UploadDir, cfg.UploadMax, cfg.Log)
	sequences := service.NewSequenceService(mongodb.NewSequenceRepository(cfg.DB))

	authService := service.NewAuthService(members, sessions, cfg.JWTSecret, cfg.SessionTTL, cfg.Log)
	authHandler := handler.NewAuthHandler(authService)
	requireAuth := middleware.Auth(cfg.JWTSecret, sessions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Entity routes ---
	v1 := e.Group("/v1", requireAuth)

	expenseRepo := mongodb.NewExpenseRepository(cfg.DB)
	expenseService := service.NewExpenseService(expenseRepo, cfg.PageSize, cfg.Log)
	registerResource(v1, "/expenses", domain.ModuleExpenses,
		handler.NewResourceHandler("expenses", expenseService,
			func() *domain.Expense { return &domain.Expense{} },
			[]string{"financial_year", "expense_type", "vendor", "status"}))
	expenseHandler := handler.NewExpenseHandler(expenseService)
	v1.GET("/expenses/summary", expenseHandler.Summary,
		middleware.RequireModuleAction(domain.ModuleExpenses, domain.ActionRead))

	payslipRepo := mongodb.NewPayslipRepository(cfg.DB)
	registerResource(v1, "/payslips", domain.ModulePayslips,
		handler.NewResourceHandler("payslips",
			service.NewResource[*domain.Payslip](domain.ModulePayslips, payslipRepo, cfg.PageSize, cfg.Log),
			func() *domain.Payslip { return &domain.Payslip{} },
			[]string{"month", "year", "status"}))
	payslipHandler := handler.NewPayslipHandler(sequences)
	v1.GET("/payslips/next-number", payslipHandler.NextNumber,
		middleware.RequireModuleAction(domain.ModulePayslips, domain.ActionCreate))

	agreementRepo := mongodb.NewAgreementRepository(cfg.DB)
	agreementService := service.NewResource[*domain.Agreement](domain.ModuleAgreements, agreementRepo, cfg.PageSize, cfg.Log)
	registerResource(v1, "/agreements", domain.ModuleAgreements,
		handler.NewResourceHandler("agreements", agreementService,
			func() *domain.Agreement { return &domain.Agreement{} },
			[]string{"status"}))
	agreementHandler := handler.NewAgreementHandler(agreementService, media)
	v1.PUT("/agreements/:id/document", agreementHandler.AttachDocument,
		middleware.RequireModuleAction(domain.ModuleAgreements, domain.ActionUpdate))

	bannerRepo := mongodb.NewBannerRepository(cfg.DB)
	bannerService := service.NewResource[*domain.Banner](domain.ModuleBanners, bannerRepo, cfg.PageSize, cfg.Log)
	bannerHandler := handler.NewBannerHandler(bannerService, media)
	registerReadUpdateDelete(v1, "/banners", domain.ModuleBanners,
		handler.NewResourceHandler("banners", bannerService,
			func() *domain.Banner { return &domain.Banner{} },
			[]string{"position", "language"}))
	v1.POST("/banners", bannerHandler.Create,
		middleware.RequireModuleAction(domain.ModuleBanners, domain.ActionCreate))
	v1.POST("/banners/:id/image", bannerHandler.AttachImage,
		middleware.RequireModuleAction(domain.ModuleBanners, domain.ActionUpdate))

	registerResource(v1, "/coupons", domain.ModuleCoupons,
		handler.NewResourceHandler("coupons",
			service.NewResource[*domain.Coupon](domain.ModuleCoupons, mongodb.NewCouponRepository(cfg.DB), cfg.PageSize, cfg.Log),
			func() *domain.Coupon { return &domain.Coupon{} },
			[]string{"status"}))

	registerResource(v1, "/currencies", domain.ModuleCurrencies,
		handler.NewResourceHandler("currencies",
			service.NewResource[*domain.Currency](domain.ModuleCurrencies, mongodb.NewCurrencyRepository(cfg.DB), cfg.PageSize, cfg.Log),
			func() *domain.Currency { return &domain.Currency{} },
			nil))

	registerResource(v1, "/events", domain.ModuleEvents,
		handler.NewResourceHandler("events",
			service.NewResource[*domain.Event](domain.ModuleEvents, mongodb.NewEventRepository(cfg.DB), cfg.PageSize, cfg.Log),
			func() *domain.Event { return &domain.Event{} },
			[]string{"language", "category", "status"}))

	registerResource(v1, "/news", domain.ModuleNews,
		handler.NewResourceHandler("news",
			service.NewResource[*domain.News](domain.ModuleNews, mongodb.NewNewsRepository(cfg.DB), cfg.PageSize, cfg.Log),
			func() *domain.News { return &domain.News{} },
			[]string{"language", "category", "status"}))

	podcastRepo := mongodb.NewPodcastRepository(cfg.DB)
	podcastService := service.NewPodcastService(podcastRepo, media, cfg.MediaQueue, cfg.PageSize, cfg.Log)
	registerResource(v1, "/podcasts", domain.ModulePodcasts,
		handler.NewResourceHandler("podcasts", podcastService,
			func() *domain.Podcast { return &domain.Podcast{} },
			[]string{"language", "category", "status"}))
	podcastHandler := handler.NewPodcastHandler(podcastService)
	v1.POST("/podcasts/:id/media", podcastHandler.AttachMedia,
		middleware.RequireModuleAction(domain.ModulePodcasts, domain.ActionUpdate))
	v1.POST("/podcasts/:id/cover", podcastHandler.AttachCover,
		middleware.RequireModuleAction(domain.ModulePodcasts, domain.ActionUpdate))

	registerResource(v1, "/members", domain.ModuleMembers,
		handler.NewResourceHandler("members",
			service.NewMemberService(members, cfg.PageSize, cfg.Log),
			func() *domain.Member { return &domain.Member{} },
			[]string{"role", "status"}))

	return e
}

// registerResource wires the uniform CRUD surface for one entity, each verb
// behind its matching permission check.
func registerResource[T domain.Record](g *echo.Group, path, module string, h *handler.ResourceHandler[T]) {
	registerReadUpdateDelete(g, path, module, h)
	g.POST(path, h.Create, middleware.RequireModuleAction(module, domain.ActionCreate))
}

// registerReadUpdateDelete is the CRUD surface minus create, for entities
// whose create route needs a custom handler (multipart uploads).
func registerReadUpdateDelete[T domain.Record](g *echo.Group, path, module string, h *handler.ResourceHandler[T]) {
	g.GET(path, h.List, middleware.RequireModuleAction(module, domain.ActionRead))
	g.GET(path+"/:id", h.Get, middleware.RequireModuleAction(module, domain.ActionRead))
	g.PUT(path+"/:id", h.Update, middleware.RequireModuleAction(module, domain.ActionUpdate))
	g.DELETE(path+"/:id", h.Delete, middleware.RequireModuleAction(module, domain.ActionDelete))
}
