package server

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/staffhub/internal/access"
	"github.com/smallbiznis/staffhub/internal/auth"
	authdomain "github.com/smallbiznis/staffhub/internal/auth/domain"
	"github.com/smallbiznis/staffhub/internal/authorization"
	"github.com/smallbiznis/staffhub/internal/commitment"
	"github.com/smallbiznis/staffhub/internal/config"
	"github.com/smallbiznis/staffhub/internal/customer"
	"github.com/smallbiznis/staffhub/internal/employee"
	"github.com/smallbiznis/staffhub/internal/event"
	"github.com/smallbiznis/staffhub/internal/inventory"
	"github.com/smallbiznis/staffhub/internal/invoice"
	invoiceservice "github.com/smallbiznis/staffhub/internal/invoice/service"
	"github.com/smallbiznis/staffhub/internal/location"
	"github.com/smallbiznis/staffhub/internal/lookup"
	"github.com/smallbiznis/staffhub/internal/observability"
	obsmiddleware "github.com/smallbiznis/staffhub/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/staffhub/internal/observability/metrics"
	obstracing "github.com/smallbiznis/staffhub/internal/observability/tracing"
	"github.com/smallbiznis/staffhub/internal/offer"
	"github.com/smallbiznis/staffhub/internal/promoter"
	"github.com/smallbiznis/staffhub/internal/providers/pdf"
	"github.com/smallbiznis/staffhub/internal/ratelimit"
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/storage"
	"github.com/smallbiznis/staffhub/internal/timetracking"
	"github.com/smallbiznis/staffhub/internal/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Provide(validation.New),
	authorization.Module,
	auth.Module,
	access.Module,
	lookup.Module,
	location.Module,
	event.Module,
	customer.Module,
	employee.Module,
	promoter.Module,
	commitment.Module,
	timetracking.Module,
	offer.Module,
	inventory.Module,
	pdf.Module,
	storage.Module,
	invoice.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(CORS())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		AbortWithError(c, ErrNotFound)
	})

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server stopped", zap.Error(err))
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
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	pagination *config.PaginationConfigHolder
	endpoints  map[string]resource.Endpoint
	relations  []resource.Relation
	authsvc    authdomain.Service
	authzSvc   authorization.Service
	limiter    *ratelimit.RequestLimiter
	documents  *invoiceservice.DocumentService
	validator  *validation.Validator
	obsMetrics *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	Pagination *config.PaginationConfigHolder
	Endpoints  []resource.Endpoint `group:"endpoints"`
	Relations  []resource.Relation `group:"relations"`
	Authsvc    authdomain.Service
	AuthzSvc   authorization.Service
	Limiter    *ratelimit.RequestLimiter `optional:"true"`
	Documents  *invoiceservice.DocumentService
	Validator  *validation.Validator
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) (*Server, error) {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("http.server"),
		pagination: p.Pagination,
		endpoints:  make(map[string]resource.Endpoint, len(p.Endpoints)),
		relations:  p.Relations,
		authsvc:    p.Authsvc,
		authzSvc:   p.AuthzSvc,
		limiter:    p.Limiter,
		documents:  p.Documents,
		validator:  p.Validator,
		obsMetrics: p.ObsMetrics,
	}

	for _, ep := range p.Endpoints {
		if _, dup := svc.endpoints[ep.Name()]; dup {
			return nil, fmt.Errorf("resource %q registered twice", ep.Name())
		}
		svc.endpoints[ep.Name()] = ep
	}
	for _, rel := range p.Relations {
		if svc.endpoints[rel.Parent] == nil || svc.endpoints[rel.Child] == nil {
			return nil, fmt.Errorf("relation %s/%s references an unknown resource", rel.Parent, rel.Path)
		}
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/api/auth")

	auth.POST("/tokens", s.IssueToken)
	auth.DELETE("/tokens/current", s.TokenRequired(), s.RevokeCurrentToken)
	auth.GET("/me", s.TokenRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	if s.cfg.Auth.Enabled {
		api.Use(s.TokenRequired())
	}
	api.Use(s.RateLimit())

	names := make([]string, 0, len(s.endpoints))
	for name := range s.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ep := s.endpoints[name]
		base := "/" + name

		api.GET(base, s.authorize(name, resource.ActionView), s.listResource(ep))
		api.POST(base, s.authorize(name, resource.ActionCreate), s.createResource(ep))
		api.GET(base+"/methods", s.ResourceMethods)
		api.GET(base+"/:id", s.authorize(name, resource.ActionView), s.showResource(ep))
		api.PUT(base+"/:id", s.authorize(name, resource.ActionUpdate), s.updateResource(ep))
		api.DELETE(base+"/:id", s.authorize(name, resource.ActionDelete), s.deleteResource(ep))
	}

	for _, rel := range s.relations {
		api.GET("/"+rel.Parent+"/:id/"+rel.Path,
			s.authorize(rel.Parent, resource.ActionView),
			s.authorize(rel.Child, resource.ActionView),
			s.listRelated(rel),
		)
	}

	api.GET("/"+resource.Invoices+"/:id/document", s.authorize(resource.Invoices, resource.ActionView), s.InvoiceDocument)
}
