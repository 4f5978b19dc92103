package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"contracts/pkg/domain"
	"contracts/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestDefaultOTPConfig(t *testing.T) {
	cfg := domain.DefaultOTPConfig()
	require.Equal(t, "http://localhost:8000/api/v1/otp", cfg.BaseURL)
	require.Equal(t, 3, cfg.MaxAttempts)
	require.Equal(t, 10, cfg.ExpiryMinutes)
	require.Equal(t, 9, cfg.MinPhoneLength)
	require.Equal(t, 6, cfg.OTPLength)
}

func TestDefaultOTPConfig_ReturnsCopy(t *testing.T) {
	cfg := domain.DefaultOTPConfig()
	cfg.MaxAttempts = 99
	cfg.BaseURL = "http://elsewhere"

	require.Equal(t, 3, domain.DefaultOTPConfig().MaxAttempts)
	require.Equal(t, domain.DefaultOTPBaseURL, domain.DefaultOTPConfig().BaseURL)
}

func TestOTPConfig_Helpers(t *testing.T) {
	cfg := domain.DefaultOTPConfig()
	require.Equal(t, 10*time.Minute, cfg.Expiry())
	require.Equal(t, "http://localhost:8000/api/v1/otp/send/", cfg.SendURL())
	require.Equal(t, "http://localhost:8000/api/v1/otp/verify/", cfg.VerifyURL())

	cfg.BaseURL = "https://api.example.com/otp/"
	require.Equal(t, "https://api.example.com/otp/send/", cfg.SendURL())
}

func TestOTPConfig_JSON(t *testing.T) {
	cfg := domain.DefaultOTPConfig()
	b, err := json.Marshal(&cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"baseUrl": "http://localhost:8000/api/v1/otp",
		"maxAttempts": 3,
		"expiryMinutes": 10,
		"minPhoneLength": 9,
		"otpLength": 6
	}`, string(b))

	var got domain.OTPConfig
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, cfg, got)

	err = json.Unmarshal([]byte(`{"baseUrl":"x"}`), &got)
	require.ErrorContains(t, err, "maxAttempts")
}

func TestOTPStatus_Closed(t *testing.T) {
	for _, s := range domain.AllOTPStatuses() {
		require.NoError(t, s.Validate(), "status %q", s)

		b, err := json.Marshal(s)
		require.NoError(t, err)

		var got domain.OTPStatus
		require.NoError(t, json.Unmarshal(b, &got))
		require.Equal(t, s, got)
	}
	require.Len(t, domain.AllOTPStatuses(), 4)

	for _, bad := range []string{"", "verified", "MaxAttempts", "Pending"} {
		require.Error(t, domain.OTPStatus(bad).Validate(), "status %q", bad)
	}

	var got domain.OTPStatus
	require.Error(t, json.Unmarshal([]byte(`"Pending"`), &got))
	require.Error(t, json.Unmarshal([]byte(`3`), &got))
}

func TestOTPSendRequest_JSON(t *testing.T) {
	var req domain.OTPSendRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone_number":"0555112233"}`), &req))
	require.Equal(t, "0555112233", req.PhoneNumber)

	b, err := json.Marshal(&req)
	require.NoError(t, err)
	require.JSONEq(t, `{"phone_number":"0555112233"}`, string(b))

	require.Error(t, json.Unmarshal([]byte(`{}`), &req))
	require.Error(t, json.Unmarshal([]byte(`{"phone_number":555}`), &req))
}

func TestOTPVerifyRequest_JSON(t *testing.T) {
	var req domain.OTPVerifyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone_number":"0555112233","otp_code":"000000","extra":1}`), &req))
	require.Equal(t, domain.OTPVerifyRequest{PhoneNumber: "0555112233", OTPCode: "000000"}, req)

	err := json.Unmarshal([]byte(`{"phone_number":"0555112233"}`), &req)
	require.ErrorContains(t, err, "otp_code")
}

func TestOTPResponse_SuccessExample(t *testing.T) {
	var res domain.OTPResponse
	err := json.Unmarshal([]byte(`{"status":"success","message":"OTP sent","data":{"otp_id":"abc123"}}`), &res)
	require.NoError(t, err)
	require.Equal(t, domain.ResponseStatusSuccess, res.Status)
	require.Equal(t, "OTP sent", res.Message)
	require.True(t, res.Data.IsSet())
	require.Equal(t, "abc123", res.Data.Value.OTPID)

	id, ok := res.OTPID()
	require.True(t, ok)
	require.Equal(t, "abc123", id)
	require.NoError(t, res.Err())
}

func TestOTPResponse_WithoutData(t *testing.T) {
	var res domain.OTPResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":"success","message":"OTP verified successfully"}`), &res))
	require.False(t, res.Data.IsSet())
	_, ok := res.OTPID()
	require.False(t, ok)

	b, err := json.Marshal(&res)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"success","message":"OTP verified successfully"}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"status":"success","message":"x","data":null}`), &res))
	require.False(t, res.Data.IsSet())
}

func TestOTPResponse_Error(t *testing.T) {
	var res domain.OTPResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":"error","message":"OTP has expired"}`), &res))

	err := res.Err()
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRemote)
	require.Equal(t, "OTP has expired", err.Error())

	res.Message = " "
	require.Equal(t, "remote service reported an error", res.Err().Error())
}

func TestOTPResponse_RejectsUnknownStatus(t *testing.T) {
	var res domain.OTPResponse
	err := json.Unmarshal([]byte(`{"status":"ok","message":"x"}`), &res)
	require.ErrorContains(t, err, "status")

	err = json.Unmarshal([]byte(`{"status":"success"}`), &res)
	require.ErrorContains(t, err, "message")

	err = json.Unmarshal([]byte(`{"status":"success","message":"x"} trailing`), &res)
	require.Error(t, err)
}

func TestOTPResponse_Encode(t *testing.T) {
	res := domain.OTPResponse{
		Status:  domain.ResponseStatusSuccess,
		Message: "OTP sent successfully",
		Data:    domain.NewOptOTPResponseData(domain.OTPResponseData{OTPID: "7b0e"}),
	}
	b, err := json.Marshal(&res)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"success","message":"OTP sent successfully","data":{"otp_id":"7b0e"}}`, string(b))
}
