package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// OTPDefaults responds with the OTP configuration the server was started with.
func (h *Handler) OTPDefaults(w http.ResponseWriter, r *http.Request) {
	cfg := h.deps.OTP

	writeData(w, func(e *jx.Encoder) {
		cfg.Encode(e)
	})
}
