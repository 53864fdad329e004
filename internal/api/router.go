package api

import (
	"net/http"

	"arith-service/internal/arithmetic"
	"arith-service/internal/metrics"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Options struct {
	MaxBodyBytes int64
	// Metrics enables request metrics and the /metrics route when set.
	Metrics *metrics.Metrics
	Logger  *zap.SugaredLogger
}

// NewRouter builds the routing table: GET / plus one POST route per
// operation.
func NewRouter(ops []arithmetic.Operation, opts Options) *mux.Router {
	log := opts.Logger
	if log == nil {
		log = zap.S().With("module", "api")
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}

	h := NewHandler(opts.MaxBodyBytes, log)

	chain := []mux.MiddlewareFunc{requestID, observe(log, opts.Metrics), h.recoverer}

	r := mux.NewRouter()
	r.Use(chain...)

	r.HandleFunc("/", h.HandleHome).Methods(http.MethodGet, http.MethodHead)

	for _, op := range ops {
		r.HandleFunc(op.Path, h.HandleOperation(op)).Methods(http.MethodPost)
	}

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	// mux only runs Use middleware on matched routes.
	r.NotFoundHandler = wrap(http.HandlerFunc(h.HandleNotFound), chain)
	r.MethodNotAllowedHandler = wrap(http.HandlerFunc(h.HandleMethodNotAllowed), chain)

	return r
}

func wrap(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}
