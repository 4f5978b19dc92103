package v1handler

import (
	"encoding/json"
	"io"
	"net/http"

	"contracts/pkg/contract"
	"contracts/pkg/serrors"

	"github.com/go-faster/jx"
)

// ListContracts responds with the kinds the checker accepts.
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	kinds := h.deps.Checker.Kinds()

	writeData(w, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("kinds")
		e.ArrStart()
		for _, k := range kinds {
			e.Str(string(k))
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}

// CheckContract decodes the request body as the kind named in the path and
// echoes the normalized payload back.
func (h *Handler) CheckContract(w http.ResponseWriter, r *http.Request) {
	kind := contract.Kind(r.PathValue("kind"))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.deps.MaxBodyBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}

	v, err := h.deps.Checker.Check(r.Context(), kind, body)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var normalized []byte
	if m, ok := v.(json.Marshaler); ok {
		if normalized, err = m.MarshalJSON(); err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrInternal, err, "could not encode %s", kind))

			return
		}
	}

	writeData(w, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("kind")
		e.Str(string(kind))
		e.FieldStart("valid")
		e.Bool(true)
		if normalized != nil {
			e.FieldStart("payload")
			e.Raw(normalized)
		}
		e.ObjEnd()
	})
}
