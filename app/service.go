// Package app assembles the pricing service from its configuration.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getaroundlab/pricing/api"
	"github.com/getaroundlab/pricing/config"
	"github.com/getaroundlab/pricing/core/scenario"
	"github.com/getaroundlab/pricing/infra/logger"
	"github.com/getaroundlab/pricing/infra/metrics"
	"github.com/getaroundlab/pricing/infra/model"
	"github.com/getaroundlab/pricing/infra/scenariostore"
)

// Service wires the model handle, scenario table, metrics sinks and HTTP
// server together.
type Service struct {
	Handle *model.Handle
	Table  *scenario.Table

	cfg     *config.Config
	engine  http.Handler
	log     logger.Logger
	closers []interface{ Close() }
}

// New creates a Service from the configuration. A model artifact that fails
// to load does not abort startup: the handle records the error and every
// prediction request rejects with it until restart. A missing scenario table
// only disables the advisor endpoints.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	handle := model.Load(cfg.Model.Path)
	if handle.Loaded() {
		logg.Infof("model loaded from %s (wrapped=%v)", handle.Path, handle.Info.Wrapped)
	} else {
		logg.Errorf("model load failed, /predict will reject until restart: %v", handle.Err)
	}

	svc := &Service{Handle: handle, cfg: cfg, log: logg}

	table, path, err := scenariostore.Load(cfg.Scenario.Dir, cfg.Scenario.File)
	if err != nil {
		logg.Warnf("scenario table unavailable, advisor endpoints disabled: %v", err)
	} else {
		logg.Infof("scenario table loaded from %s (%d rows)", path, table.Len())
		svc.Table = table
	}

	var sinks []metrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		if closer, ok := sink.(interface{ Close() }); ok {
			svc.closers = append(svc.closers, closer)
		}
		sinks = append(sinks, sink)
	}
	var sink metrics.Sink = metrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	server, err := api.NewServer(handle, svc.Table,
		api.WithSink(sink),
		api.WithLogger(logger.New("api")),
	)
	if err != nil {
		return nil, fmt.Errorf("api server: %w", err)
	}
	svc.engine = server.Router(cfg.Server.CORSAllowOrigins)
	return svc, nil
}

// Handler exposes the assembled HTTP handler, mainly for tests.
func (s *Service) Handler() http.Handler { return s.engine }

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddress); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.cfg.Server.Address, Handler: s.engine}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()

	s.log.Infof("pricing API listening on %s", s.cfg.Server.Address)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	for _, c := range s.closers {
		c.Close()
	}
	return nil
}
