package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"contracts/pkg/domain"
	"contracts/pkg/logger"
	"contracts/pkg/serrors"

	"go.uber.org/zap"
)

// Factory returns a fresh pointer to the shape a payload is decoded into.
type Factory func() json.Unmarshaler

// Registry is the default Checker implementation. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[Kind]Factory
}

// Ensure Registry conforms to the Checker interface at compile time.
var _ Checker = (*Registry)(nil)

// New returns a Registry with every domain shape registered.
func New() *Registry {
	r := &Registry{factories: map[Kind]Factory{}}
	r.Register(KindOTPSendRequest, func() json.Unmarshaler { return &domain.OTPSendRequest{} })
	r.Register(KindOTPVerifyRequest, func() json.Unmarshaler { return &domain.OTPVerifyRequest{} })
	r.Register(KindOTPResponse, func() json.Unmarshaler { return &domain.OTPResponse{} })
	r.Register(KindOTPStatus, func() json.Unmarshaler { return new(domain.OTPStatus) })
	r.Register(KindOTPConfig, func() json.Unmarshaler { return &domain.OTPConfig{} })
	r.Register(KindSpecialty, func() json.Unmarshaler { return &domain.Specialty{} })
	r.Register(KindSpecialtyResponse, func() json.Unmarshaler { return &domain.SpecialtyResponse{} })
	r.Register(KindSpecialtiesListResponse, func() json.Unmarshaler { return &domain.SpecialtiesListResponse{} })
	r.Register(KindCreateSpecialtyRequest, func() json.Unmarshaler { return &domain.CreateSpecialtyRequest{} })

	return r
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind Kind, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[kind] = f
}

// Check decodes payload into the shape registered for kind. A context that is
// already past its deadline yields serrors.ErrTimeout.
func (r *Registry) Check(ctx context.Context, kind Kind, payload []byte) (any, error) {
	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "unknown contract kind %q", kind)
	}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "empty %s payload", kind)
	}

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "check %s", kind)
		}

		return nil, serrors.Wrap(serrors.ErrInternal, err, "check %s", kind)
	}

	v := f()
	if err := v.UnmarshalJSON(payload); err != nil {
		logger.Debug(ctx, "payload rejected", zap.String("kind", string(kind)), zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s payload", kind)
	}

	return v, nil
}

// Kinds lists the registered kinds in lexical order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
