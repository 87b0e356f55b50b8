package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slzdigital/catalogo/internal/config"
	"github.com/slzdigital/catalogo/internal/dashboard"
	dashboarddomain "github.com/slzdigital/catalogo/internal/dashboard/domain"
	"github.com/slzdigital/catalogo/internal/observability"
	obslogger "github.com/slzdigital/catalogo/internal/observability/logger"
	obsmetrics "github.com/slzdigital/catalogo/internal/observability/metrics"
	obstracing "github.com/slzdigital/catalogo/internal/observability/tracing"
	"github.com/slzdigital/catalogo/internal/ratelimit"
	"github.com/slzdigital/catalogo/internal/reference"
	referencedomain "github.com/slzdigital/catalogo/internal/reference/domain"
	"github.com/slzdigital/catalogo/internal/review"
	reviewdomain "github.com/slzdigital/catalogo/internal/review/domain"
	"github.com/slzdigital/catalogo/internal/system"
	systemdomain "github.com/slzdigital/catalogo/internal/system/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	system.Module,
	review.Module,
	dashboard.Module,
	reference.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(corsMiddleware(cfg))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	systemSvc    systemdomain.Service
	reviewSvc    reviewdomain.Service
	dashboardSvc dashboarddomain.Service
	refrepo      referencedomain.Repository
	limiter      *ratelimit.ReviewLimiter
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	SystemSvc    systemdomain.Service
	ReviewSvc    reviewdomain.Service
	DashboardSvc dashboarddomain.Service
	Refrepo      referencedomain.Repository
	Limiter      *ratelimit.ReviewLimiter
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("server"),
		systemSvc:    p.SystemSvc,
		reviewSvc:    p.ReviewSvc,
		dashboardSvc: p.DashboardSvc,
		refrepo:      p.Refrepo,
		limiter:      p.Limiter,
	}

	if p.Cfg.AdminAPIToken == "" {
		svc.log.Warn("ADMIN_API_TOKEN is empty; admin routes are unprotected (development only)")
	}

	svc.registerPublicRoutes()
	svc.registerAdminRoutes()
	svc.registerFallback()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerPublicRoutes() {
	r := s.engine

	// -------- Systems --------
	r.GET("/systems", s.ListSystems)
	r.GET("/systems/category/:category", s.ListSystemsByCategory)
	r.GET("/systems/department/:department", s.ListSystemsByDepartment)
	r.POST("/systems/search", s.SearchSystems)
	r.GET("/systems/:id", s.GetSystemByID)
	r.POST("/systems/:id/review", s.ReviewRateLimit(), s.SubmitReview)

	// -------- Dashboard --------
	r.GET("/dashboard/stats", s.GetDashboardStats)

	// -------- Reference lists --------
	r.GET("/categories", s.ListCategories)
	r.GET("/categories/departments", s.ListDepartments)
	r.GET("/categories/secretaries", s.ListSecretaries)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin", s.AdminRequired())

	admin.GET("/systems", s.ListSystems)
	admin.POST("/systems", s.CreateSystem)
	admin.GET("/systems/:id", s.GetSystemByID)
	admin.PUT("/systems/:id", s.UpdateSystem)
	admin.DELETE("/systems/:id", s.DeleteSystem)
}

func (s *Server) registerFallback() {
	s.engine.NoRoute(func(c *gin.Context) {
		// static assets (vite build of the catalog SPA)
		if fileExists("./public", c.Request.URL.Path) {
			c.File("./public" + c.Request.URL.Path)
			return
		}

		c.File("./public/index.html")
	})
}

func fileExists(publicDir, reqPath string) bool {
	clean := filepath.Clean(reqPath)

	// prevent path traversal
	if clean == "." || clean == "/" || clean == ".." {
		return false
	}

	fullPath := filepath.Join(publicDir, clean)

	info, err := os.Stat(fullPath)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
