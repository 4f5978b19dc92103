package contract_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"contracts/pkg/contract"
	"contracts/pkg/domain"
	"contracts/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Kinds(t *testing.T) {
	kinds := contract.New().Kinds()
	require.Equal(t, []contract.Kind{
		contract.KindCreateSpecialtyRequest,
		contract.KindOTPConfig,
		contract.KindOTPResponse,
		contract.KindOTPSendRequest,
		contract.KindOTPStatus,
		contract.KindOTPVerifyRequest,
		contract.KindSpecialtiesListResponse,
		contract.KindSpecialty,
		contract.KindSpecialtyResponse,
	}, kinds)
}

func TestRegistry_Check(t *testing.T) {
	r := contract.New()
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    contract.Kind
		payload string
		want    any
		errKind serrors.Kind
	}{
		{
			name:    "otp send request",
			kind:    contract.KindOTPSendRequest,
			payload: `{"phone_number":"0555112233"}`,
			want:    &domain.OTPSendRequest{PhoneNumber: "0555112233"},
		},
		{
			name:    "otp response",
			kind:    contract.KindOTPResponse,
			payload: ` {"status":"success","message":"OTP sent","data":{"otp_id":"abc123"}} `,
			want: &domain.OTPResponse{
				Status:  domain.ResponseStatusSuccess,
				Message: "OTP sent",
				Data:    domain.NewOptOTPResponseData(domain.OTPResponseData{OTPID: "abc123"}),
			},
		},
		{
			name:    "otp status",
			kind:    contract.KindOTPStatus,
			payload: `"Max Attempts"`,
			want:    func() *domain.OTPStatus { s := domain.OTPStatusMaxAttempts; return &s }(),
		},
		{
			name:    "otp status out of set",
			kind:    contract.KindOTPStatus,
			payload: `"Locked"`,
			errKind: serrors.ErrBadRequest,
		},
		{
			name:    "create specialty with titles only",
			kind:    contract.KindCreateSpecialtyRequest,
			payload: `{"title":"Neurology","title_ar":"طب الأعصاب"}`,
			want:    &domain.CreateSpecialtyRequest{Title: "Neurology", TitleAr: "طب الأعصاب"},
		},
		{
			name:    "missing field",
			kind:    contract.KindOTPVerifyRequest,
			payload: `{"phone_number":"0555112233"}`,
			errKind: serrors.ErrBadRequest,
		},
		{
			name:    "malformed json",
			kind:    contract.KindSpecialty,
			payload: `{"id":`,
			errKind: serrors.ErrBadRequest,
		},
		{
			name:    "empty payload",
			kind:    contract.KindOTPConfig,
			payload: "  \n",
			errKind: serrors.ErrBadRequest,
		},
		{
			name:    "unknown kind",
			kind:    contract.Kind("doctor"),
			payload: `{}`,
			errKind: serrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Check(ctx, tt.kind, []byte(tt.payload))
			if tt.errKind != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.errKind)
				require.Nil(t, got)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	r := contract.New()
	r.Register("raw", func() json.Unmarshaler { return &json.RawMessage{} })

	got, err := r.Check(context.Background(), "raw", []byte(`[1,2]`))
	require.NoError(t, err)
	require.Equal(t, json.RawMessage(`[1,2]`), *got.(*json.RawMessage))
	require.Contains(t, r.Kinds(), contract.Kind("raw"))
}

func TestRegistry_CheckDoneContext(t *testing.T) {
	r := contract.New()
	payload := []byte(`{"phone_number":"0555112233"}`)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	got, err := r.Check(ctx, contract.KindOTPSendRequest, payload)
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, got)

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	_, err = r.Check(ctx, contract.KindOTPSendRequest, payload)
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, context.Canceled)
}
