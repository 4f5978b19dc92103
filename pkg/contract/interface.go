// Package contract checks raw JSON payloads against the named wire shapes of
// the domain package. It lets consumers of the OTP and specialties services
// verify fixtures, recorded responses or hand-written requests before they
// are sent.
package contract

import "context"

// Kind names a wire shape, e.g. "otp-send-request".
type Kind string

const (
	KindOTPSendRequest          Kind = "otp-send-request"
	KindOTPVerifyRequest        Kind = "otp-verify-request"
	KindOTPResponse             Kind = "otp-response"
	KindOTPStatus               Kind = "otp-status"
	KindOTPConfig               Kind = "otp-config"
	KindSpecialty               Kind = "specialty"
	KindSpecialtyResponse       Kind = "specialty-response"
	KindSpecialtiesListResponse Kind = "specialties-list-response"
	KindCreateSpecialtyRequest  Kind = "create-specialty-request"
)

// Checker decodes payloads into the shape registered for a kind.
//
//go:generate mockgen -package mockcontract -source=interface.go -destination=mock/mockcontract.go *
type Checker interface {
	// Check decodes payload as kind and returns the decoded value. It fails
	// with serrors.ErrNotFound for unknown kinds and serrors.ErrBadRequest for
	// payloads that do not satisfy the shape.
	Check(ctx context.Context, kind Kind, payload []byte) (any, error)
	// Kinds lists the registered kinds in lexical order.
	Kinds() []Kind
}
