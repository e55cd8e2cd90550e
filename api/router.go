// Package api exposes the pricing service over HTTP: a health surface, the
// prediction endpoint and the buffer scenario advisor endpoints.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/getaroundlab/pricing/core/scenario"
	"github.com/getaroundlab/pricing/infra/logger"
	"github.com/getaroundlab/pricing/infra/metrics"
	"github.com/getaroundlab/pricing/infra/model"
)

// Server holds the immutable per-process state the handlers read: the model
// handle, the scenario table and its per-scope recommendations. Nothing here
// mutates during request handling.
type Server struct {
	handle *model.Handle
	table  *scenario.Table
	recs   map[string]scenario.Recommendation
	sink   metrics.Sink
	log    logger.Logger
}

// Option tweaks Server construction.
type Option func(*Server)

// WithSink sets the metrics sink recording prediction events.
func WithSink(sink metrics.Sink) Option {
	return func(s *Server) { s.sink = sink }
}

// WithLogger sets the request logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Server) { s.log = log }
}

// NewServer assembles the handler state. The scenario table may be nil when
// the table file is absent; scenario endpoints then answer 503. Per-scope
// recommendations are computed once here, from the loaded table.
func NewServer(handle *model.Handle, table *scenario.Table, opts ...Option) (*Server, error) {
	s := &Server{
		handle: handle,
		table:  table,
		sink:   metrics.NopSink{},
		log:    logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if table != nil {
		recs, err := scenario.RecommendAll(table)
		if err != nil {
			return nil, err
		}
		s.recs = recs
	}
	return s, nil
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 0 || (len(corsOrigins) == 1 && corsOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.POST("/predict", s.predict)
	r.GET("/scenarios", s.scenarios)
	r.GET("/scenarios/:scope/:buffer", s.scenarioDetail)
	r.GET("/recommendations", s.recommendations)
	return r
}

// requestLog tags every request with an ID and logs method, path, status and
// latency.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)

		start := time.Now()
		c.Next()

		s.log.Debugw("request", map[string]any{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}
