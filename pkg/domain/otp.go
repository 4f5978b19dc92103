package domain

import (
	"strings"
	"time"

	"contracts/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ResponseStatus is the outcome flag carried by every response envelope of
// the external API.
type ResponseStatus string

const (
	// ResponseStatusSuccess marks a successful call; payload fields may be present.
	ResponseStatusSuccess ResponseStatus = "success"
	// ResponseStatusError marks a failed call; Message holds a human-readable reason.
	ResponseStatusError ResponseStatus = "error"
)

// Validate reports an error when s is not one of the declared statuses.
func (s ResponseStatus) Validate() error {
	switch s {
	case ResponseStatusSuccess, ResponseStatusError:
		return nil
	default:
		return errors.Errorf("invalid value: %q", string(s))
	}
}

// Encode encodes ResponseStatus as json.
func (s ResponseStatus) Encode(e *jx.Encoder) {
	e.Str(string(s))
}

// Decode decodes ResponseStatus from json, rejecting unknown values.
func (s *ResponseStatus) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode ResponseStatus to nil")
	}
	v, err := d.Str()
	if err != nil {
		return err
	}
	if err := ResponseStatus(v).Validate(); err != nil {
		return err
	}
	*s = ResponseStatus(v)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s ResponseStatus) MarshalJSON() ([]byte, error) {
	return marshal(s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ResponseStatus) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// OTPResponseStatus is the status flag of OTP replies.
type OTPResponseStatus = ResponseStatus

// OTPStatus describes the lifecycle state of an OTP record held by the OTP
// service.
type OTPStatus string

const (
	// OTPStatusVerified means the code was consumed by a successful verification.
	OTPStatusVerified OTPStatus = "Verified"
	// OTPStatusExpired means the code outlived its expiry window.
	OTPStatusExpired OTPStatus = "Expired"
	// OTPStatusMaxAttempts means the verification attempt budget is exhausted.
	OTPStatusMaxAttempts OTPStatus = "Max Attempts"
	// OTPStatusActive means the code can still be verified.
	OTPStatusActive OTPStatus = "Active"
)

// AllOTPStatuses returns every OTPStatus in declaration order.
func AllOTPStatuses() []OTPStatus {
	return []OTPStatus{OTPStatusVerified, OTPStatusExpired, OTPStatusMaxAttempts, OTPStatusActive}
}

// Validate reports an error when s is not one of the four declared statuses.
func (s OTPStatus) Validate() error {
	switch s {
	case OTPStatusVerified, OTPStatusExpired, OTPStatusMaxAttempts, OTPStatusActive:
		return nil
	default:
		return errors.Errorf("invalid value: %q", string(s))
	}
}

// Encode encodes OTPStatus as json.
func (s OTPStatus) Encode(e *jx.Encoder) {
	e.Str(string(s))
}

// Decode decodes OTPStatus from json, rejecting unknown values.
func (s *OTPStatus) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode OTPStatus to nil")
	}
	v, err := d.Str()
	if err != nil {
		return err
	}
	if err := OTPStatus(v).Validate(); err != nil {
		return err
	}
	*s = OTPStatus(v)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s OTPStatus) MarshalJSON() ([]byte, error) {
	return marshal(s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *OTPStatus) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// OTPSendRequest asks the OTP service to send a code to PhoneNumber.
// No format constraint is applied here.
type OTPSendRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// Encode encodes OTPSendRequest as json.
func (s *OTPSendRequest) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("phone_number")
	e.Str(s.PhoneNumber)
	e.ObjEnd()
}

// Decode decodes OTPSendRequest from json.
func (s *OTPSendRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode OTPSendRequest to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "phone_number":
			seen |= 1 << 0
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"phone_number\"")
			}
			s.PhoneNumber = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode OTPSendRequest")
	}

	return checkRequired("OTPSendRequest", seen, "phone_number")
}

// MarshalJSON implements json.Marshaler.
func (s OTPSendRequest) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *OTPSendRequest) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// OTPVerifyRequest submits OTPCode received on PhoneNumber for verification.
type OTPVerifyRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTPCode     string `json:"otp_code"`
}

// Encode encodes OTPVerifyRequest as json.
func (s *OTPVerifyRequest) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("phone_number")
	e.Str(s.PhoneNumber)
	e.FieldStart("otp_code")
	e.Str(s.OTPCode)
	e.ObjEnd()
}

// Decode decodes OTPVerifyRequest from json.
func (s *OTPVerifyRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode OTPVerifyRequest to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "phone_number":
			seen |= 1 << 0
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"phone_number\"")
			}
			s.PhoneNumber = v
		case "otp_code":
			seen |= 1 << 1
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"otp_code\"")
			}
			s.OTPCode = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode OTPVerifyRequest")
	}

	return checkRequired("OTPVerifyRequest", seen, "phone_number", "otp_code")
}

// MarshalJSON implements json.Marshaler.
func (s OTPVerifyRequest) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *OTPVerifyRequest) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// OTPResponseData is the payload of a successful send call.
type OTPResponseData struct {
	OTPID string `json:"otp_id"`
}

// Encode encodes OTPResponseData as json.
func (s *OTPResponseData) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("otp_id")
	e.Str(s.OTPID)
	e.ObjEnd()
}

// Decode decodes OTPResponseData from json.
func (s *OTPResponseData) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode OTPResponseData to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "otp_id":
			seen |= 1 << 0
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"otp_id\"")
			}
			s.OTPID = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode OTPResponseData")
	}

	return checkRequired("OTPResponseData", seen, "otp_id")
}

// MarshalJSON implements json.Marshaler.
func (s OTPResponseData) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *OTPResponseData) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// OptOTPResponseData is optional OTPResponseData. A null on the wire decodes as unset.
type OptOTPResponseData struct {
	Value OTPResponseData
	Set   bool
}

// NewOptOTPResponseData returns new OptOTPResponseData with value set to v.
func NewOptOTPResponseData(v OTPResponseData) OptOTPResponseData {
	return OptOTPResponseData{Value: v, Set: true}
}

// IsSet returns true if OptOTPResponseData was set.
func (o OptOTPResponseData) IsSet() bool { return o.Set }

// Get returns value and boolean that denotes whether value was set.
func (o OptOTPResponseData) Get() (v OTPResponseData, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Decode decodes OTPResponseData from json.
func (o *OptOTPResponseData) Decode(d *jx.Decoder) error {
	if o == nil {
		return errors.New("invalid: unable to decode OptOTPResponseData to nil")
	}
	if d.Next() == jx.Null {
		*o = OptOTPResponseData{}

		return d.Null()
	}
	o.Set = true

	return o.Value.Decode(d)
}

// OTPResponse is the envelope returned by both the send and verify
// endpoints. Data is only meaningful when Status is success; nothing here
// enforces that.
type OTPResponse struct {
	Status  ResponseStatus     `json:"status"`
	Message string             `json:"message"`
	Data    OptOTPResponseData `json:"data"`
}

// Encode encodes OTPResponse as json.
func (s *OTPResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("status")
	s.Status.Encode(e)
	e.FieldStart("message")
	e.Str(s.Message)
	if s.Data.Set {
		e.FieldStart("data")
		s.Data.Value.Encode(e)
	}
	e.ObjEnd()
}

// Decode decodes OTPResponse from json.
func (s *OTPResponse) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode OTPResponse to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "status":
			seen |= 1 << 0
			if err := s.Status.Decode(d); err != nil {
				return errors.Wrap(err, "decode field \"status\"")
			}
		case "message":
			seen |= 1 << 1
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"message\"")
			}
			s.Message = v
		case "data":
			s.Data.Reset()
			if err := s.Data.Decode(d); err != nil {
				return errors.Wrap(err, "decode field \"data\"")
			}
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode OTPResponse")
	}

	return checkRequired("OTPResponse", seen, "status", "message")
}

// Reset unsets value.
func (o *OptOTPResponseData) Reset() {
	*o = OptOTPResponseData{}
}

// MarshalJSON implements json.Marshaler. Unset values encode as null.
func (o OptOTPResponseData) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return marshal(&o.Value), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptOTPResponseData) UnmarshalJSON(data []byte) error {
	return unmarshal(data, o)
}

// MarshalJSON implements json.Marshaler.
func (s OTPResponse) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *OTPResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// Err converts an error envelope into a semantic error of kind
// serrors.ErrRemote. It returns nil for successful responses.
func (s *OTPResponse) Err() error {
	if s.Status != ResponseStatusError {
		return nil
	}

	return serrors.With(serrors.ErrRemote, "%s", remoteMessage(s.Message))
}

// OTPID returns the identifier of the sent code when present.
func (s *OTPResponse) OTPID() (string, bool) {
	data, ok := s.Data.Get()

	return data.OTPID, ok
}

func remoteMessage(msg string) string {
	if msg = strings.TrimSpace(msg); msg != "" {
		return msg
	}

	return "remote service reported an error"
}

const (
	// DefaultOTPBaseURL is the development base URL of the OTP service.
	DefaultOTPBaseURL = "http://localhost:8000/api/v1/otp"
	// DefaultOTPMaxAttempts is the number of verification attempts allowed per code.
	DefaultOTPMaxAttempts = 3
	// DefaultOTPExpiryMinutes is how long a code stays valid.
	DefaultOTPExpiryMinutes = 10
	// DefaultOTPMinPhoneLength is the shortest accepted phone number.
	DefaultOTPMinPhoneLength = 9
	// DefaultOTPLength is the number of digits in a code.
	DefaultOTPLength = 6
)

// OTPConfig is the client-side configuration of the OTP service.
type OTPConfig struct {
	BaseURL        string `json:"baseUrl"`
	MaxAttempts    int    `json:"maxAttempts"`
	ExpiryMinutes  int    `json:"expiryMinutes"`
	MinPhoneLength int    `json:"minPhoneLength"`
	OTPLength      int    `json:"otpLength"`
}

// DefaultOTPConfig returns the canonical default OTPConfig. Each call returns
// a fresh copy.
func DefaultOTPConfig() OTPConfig {
	return OTPConfig{
		BaseURL:        DefaultOTPBaseURL,
		MaxAttempts:    DefaultOTPMaxAttempts,
		ExpiryMinutes:  DefaultOTPExpiryMinutes,
		MinPhoneLength: DefaultOTPMinPhoneLength,
		OTPLength:      DefaultOTPLength,
	}
}

// Expiry returns ExpiryMinutes as a duration.
func (c OTPConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

// SendURL returns the URL of the send endpoint below BaseURL.
func (c OTPConfig) SendURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/send/"
}

// VerifyURL returns the URL of the verify endpoint below BaseURL.
func (c OTPConfig) VerifyURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/verify/"
}

// Encode encodes OTPConfig as json.
func (c *OTPConfig) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("baseUrl")
	e.Str(c.BaseURL)
	e.FieldStart("maxAttempts")
	e.Int(c.MaxAttempts)
	e.FieldStart("expiryMinutes")
	e.Int(c.ExpiryMinutes)
	e.FieldStart("minPhoneLength")
	e.Int(c.MinPhoneLength)
	e.FieldStart("otpLength")
	e.Int(c.OTPLength)
	e.ObjEnd()
}

// Decode decodes OTPConfig from json.
func (c *OTPConfig) Decode(d *jx.Decoder) error {
	if c == nil {
		return errors.New("invalid: unable to decode OTPConfig to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "baseUrl":
			seen |= 1 << 0
			c.BaseURL, err = d.Str()
		case "maxAttempts":
			seen |= 1 << 1
			c.MaxAttempts, err = d.Int()
		case "expiryMinutes":
			seen |= 1 << 2
			c.ExpiryMinutes, err = d.Int()
		case "minPhoneLength":
			seen |= 1 << 3
			c.MinPhoneLength, err = d.Int()
		case "otpLength":
			seen |= 1 << 4
			c.OTPLength, err = d.Int()
		default:
			return d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode OTPConfig")
	}

	return checkRequired("OTPConfig", seen,
		"baseUrl", "maxAttempts", "expiryMinutes", "minPhoneLength", "otpLength")
}

// MarshalJSON implements json.Marshaler.
func (c OTPConfig) MarshalJSON() ([]byte, error) {
	return marshal(&c), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *OTPConfig) UnmarshalJSON(data []byte) error {
	return unmarshal(data, c)
}
