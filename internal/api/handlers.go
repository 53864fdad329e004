package api

import (
	"encoding/json"
	"math"
	"net/http"

	"arith-service/internal/arithmetic"
	"arith-service/internal/types"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const WelcomeMessage = "Welcome to the Flask API!"

type Handler struct {
	validate     *validator.Validate
	maxBodyBytes int64
	log          *zap.SugaredLogger
}

func NewHandler(maxBodyBytes int64, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = zap.S().With("module", "api")
	}
	return &Handler{
		validate:     newValidator(),
		maxBodyBytes: maxBodyBytes,
		log:          log,
	}
}

func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write([]byte(WelcomeMessage)); err != nil {
		h.log.Debugw("write response", "error", err)
	}
}

// HandleOperation serves POST requests for op: {"a": x, "b": y} in,
// {"result": op(x, y)} out.
func (h *Handler) HandleOperation(op arithmetic.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, b, err := h.decodeOperands(w, r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		result := op.Func(a, b)
		if math.IsInf(result, 0) || math.IsNaN(result) {
			h.writeError(w, r, errors.Mark(
				errors.Newf("%s(%g, %g) does not produce a finite number", op.Name, a, b),
				ErrUnprocessable,
			))
			return
		}

		h.writeJSON(w, http.StatusOK, types.ResultResponse{Result: result})
	}
}

func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, types.ErrorResponse{Error: "route " + r.URL.Path + " not found"})
}

func (h *Handler) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, types.ErrorResponse{
		Error: "method " + r.Method + " not allowed on " + r.URL.Path,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()

	if status == http.StatusInternalServerError {
		h.log.Errorw("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		msg = internalErrorMessage
	} else {
		h.log.Debugw("rejected request",
			"path", r.URL.Path,
			"status", status,
			"request_id", RequestIDFromContext(r.Context()),
			"error", msg,
		)
	}

	h.writeJSON(w, status, types.ErrorResponse{Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warnw("encode response", "error", err)
	}
}
