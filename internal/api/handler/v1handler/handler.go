// Package v1handler serves the v1 contract endpoints of the docs server.
package v1handler

import (
	"context"
	"net/http"

	"contracts/pkg/contract"
	"contracts/pkg/domain"
	"contracts/pkg/logger"
	"contracts/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes is used when Deps.MaxBodyBytes is not positive.
const DefaultMaxBodyBytes = 1 << 20

type Deps struct {
	Checker contract.Checker
	// OTP is the resolved OTP configuration served by /v1/defaults/otp.
	OTP          domain.OTPConfig
	MaxBodyBytes int64
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/contracts", h.ListContracts)
	mux.HandleFunc("POST /v1/contracts/{kind}/check", h.CheckContract)
	mux.HandleFunc("GET /v1/defaults/otp", h.OTPDefaults)
}

// ErrorResponse is the error body written by NewError.
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// NewError maps err to a status code and a message safe to return to clients.
func (h *Handler) NewError(ctx context.Context, err error) ErrorResponse {
	res := ErrorResponse{
		StatusCode: serrors.StatusCode(err),
		Message:    serrors.PublicMessage(err),
	}
	if res.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return res
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("status")
	domain.ResponseStatusError.Encode(e)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()

	write(w, res.StatusCode, e.Bytes())
}

// writeData writes a success envelope whose data member is produced by data.
func writeData(w http.ResponseWriter, data func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("status")
	domain.ResponseStatusSuccess.Encode(e)
	e.FieldStart("data")
	data(e)
	e.ObjEnd()

	write(w, http.StatusOK, e.Bytes())
}

func write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
