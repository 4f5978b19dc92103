package domain_test

import (
	"encoding/json"
	"testing"

	"contracts/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestMarshal_ByValue(t *testing.T) {
	req := domain.CreateSpecialtyRequest{Title: "Dermatology", TitleAr: "الأمراض الجلدية"}
	b, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"Dermatology","title_ar":"الأمراض الجلدية"}`, string(b))

	var got domain.CreateSpecialtyRequest
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, req, got)

	b, err = json.Marshal(domain.OTPResponse{Status: domain.ResponseStatusSuccess, Message: "OTP verified successfully"})
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"success","message":"OTP verified successfully"}`, string(b))

	b, err = json.Marshal(cardiology())
	require.NoError(t, err)
	var sp domain.Specialty
	require.NoError(t, json.Unmarshal(b, &sp))
	require.Equal(t, cardiology(), sp)
}

func TestMarshal_Standalone(t *testing.T) {
	b, err := json.Marshal(domain.NewOptString("x"))
	require.NoError(t, err)
	require.Equal(t, `"x"`, string(b))

	b, err = json.Marshal(domain.OptInt{})
	require.NoError(t, err)
	require.Equal(t, `null`, string(b))

	o := domain.NewOptBool(true)
	require.NoError(t, json.Unmarshal([]byte(`null`), &o))
	require.False(t, o.IsSet())

	b, err = json.Marshal(domain.ResponseStatusError)
	require.NoError(t, err)
	require.Equal(t, `"error"`, string(b))

	var s domain.ResponseStatus
	require.Error(t, json.Unmarshal([]byte(`"fail"`), &s))

	b, err = json.Marshal(domain.OTPResponseData{OTPID: "abc123"})
	require.NoError(t, err)
	require.JSONEq(t, `{"otp_id":"abc123"}`, string(b))

	p := domain.Pagination{
		Count:       11,
		TotalPages:  2,
		CurrentPage: 1,
		PageSize:    10,
		Next:        domain.NewNilString("http://localhost:8000/api/v1/specialties/?page=2"),
		Previous:    domain.NullString(),
	}
	b, err = json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"count": 11, "total_pages": 2, "current_page": 1, "page_size": 10,
		"next": "http://localhost:8000/api/v1/specialties/?page=2", "previous": null
	}`, string(b))

	var gotPage domain.Pagination
	require.NoError(t, json.Unmarshal(b, &gotPage))
	require.Equal(t, p, gotPage)
	require.True(t, gotPage.HasNext())
	require.False(t, gotPage.HasPrevious())

	b, err = json.Marshal(domain.NilPagination{Null: true})
	require.NoError(t, err)
	require.Equal(t, `null`, string(b))
}

type auditRecord struct {
	Request domain.CreateSpecialtyRequest `json:"request"`
	Note    domain.OptString              `json:"note"`
	Page    domain.Pagination             `json:"page"`
	Status  domain.ResponseStatus         `json:"status"`
	Reply   domain.OTPResponse            `json:"reply"`
	Data    domain.OptOTPResponseData     `json:"data"`
	Errors  domain.FieldErrors            `json:"errors"`
}

func TestMarshal_Embedded(t *testing.T) {
	rec := auditRecord{
		Request: domain.CreateSpecialtyRequest{
			Title:         "Dermatology",
			TitleAr:       "الأمراض الجلدية",
			TotalTimeCall: domain.NewOptInt(25),
		},
		Page: domain.Pagination{
			CurrentPage: 1,
			PageSize:    10,
			Next:        domain.NullString(),
			Previous:    domain.NullString(),
		},
		Status: domain.ResponseStatusSuccess,
		Reply:  domain.OTPResponse{Status: domain.ResponseStatusError, Message: "OTP has expired"},
	}

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"request": {"title": "Dermatology", "title_ar": "الأمراض الجلدية", "total_time_call": 25},
		"note": null,
		"page": {
			"count": 0, "total_pages": 0, "current_page": 1, "page_size": 10,
			"next": null, "previous": null
		},
		"status": "success",
		"reply": {"status": "error", "message": "OTP has expired"},
		"data": null,
		"errors": null
	}`, string(b))

	var got auditRecord
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, rec, got)

	// pointers go through the same methods
	b2, err := json.Marshal(&rec)
	require.NoError(t, err)
	require.Equal(t, string(b), string(b2))
}
