package domain

import (
	"net/url"
	"strconv"
	"time"

	"contracts/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	// DefaultSpecialtyPageSize is the page size the specialties service uses when none is requested.
	DefaultSpecialtyPageSize = 10
	// MaxSpecialtyPageSize caps the page size the specialties service honours.
	MaxSpecialtyPageSize = 100
)

// Specialty is a medical specialty record owned by the specialties service.
// Titles and descriptions come in English and Arabic. The three *TimeCall
// fields are call-timing thresholds; no ordering between them is assumed.
type Specialty struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	TitleAr         string `json:"title_ar"`
	Icon            string `json:"icon"`
	BackgroundColor string `json:"background_color"`
	ColorClass      string `json:"color_class"`
	Description     string `json:"description"`
	DescriptionAr   string `json:"description_ar"`
	TotalTimeCall   int    `json:"total_time_call"`
	WarningTimeCall int    `json:"warning_time_call"`
	AlertTimeCall   int    `json:"alert_time_call"`
	Status          bool   `json:"status"`
	UpdatedAt       string `json:"updated_at"`
}

var specialtyFields = []string{
	"id", "title", "title_ar", "icon", "background_color", "color_class",
	"description", "description_ar", "total_time_call", "warning_time_call",
	"alert_time_call", "status", "updated_at",
}

// UpdatedAtTime parses UpdatedAt as an RFC 3339 timestamp.
func (s *Specialty) UpdatedAtTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s.UpdatedAt)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse updated_at")
	}

	return t, nil
}

// Encode encodes Specialty as json.
func (s *Specialty) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID)
	e.FieldStart("title")
	e.Str(s.Title)
	e.FieldStart("title_ar")
	e.Str(s.TitleAr)
	e.FieldStart("icon")
	e.Str(s.Icon)
	e.FieldStart("background_color")
	e.Str(s.BackgroundColor)
	e.FieldStart("color_class")
	e.Str(s.ColorClass)
	e.FieldStart("description")
	e.Str(s.Description)
	e.FieldStart("description_ar")
	e.Str(s.DescriptionAr)
	e.FieldStart("total_time_call")
	e.Int(s.TotalTimeCall)
	e.FieldStart("warning_time_call")
	e.Int(s.WarningTimeCall)
	e.FieldStart("alert_time_call")
	e.Int(s.AlertTimeCall)
	e.FieldStart("status")
	e.Bool(s.Status)
	e.FieldStart("updated_at")
	e.Str(s.UpdatedAt)
	e.ObjEnd()
}

// Decode decodes Specialty from json. Every field is required.
func (s *Specialty) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode Specialty to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "id":
			seen |= 1 << 0
			s.ID, err = d.Str()
		case "title":
			seen |= 1 << 1
			s.Title, err = d.Str()
		case "title_ar":
			seen |= 1 << 2
			s.TitleAr, err = d.Str()
		case "icon":
			seen |= 1 << 3
			s.Icon, err = d.Str()
		case "background_color":
			seen |= 1 << 4
			s.BackgroundColor, err = d.Str()
		case "color_class":
			seen |= 1 << 5
			s.ColorClass, err = d.Str()
		case "description":
			seen |= 1 << 6
			s.Description, err = d.Str()
		case "description_ar":
			seen |= 1 << 7
			s.DescriptionAr, err = d.Str()
		case "total_time_call":
			seen |= 1 << 8
			s.TotalTimeCall, err = d.Int()
		case "warning_time_call":
			seen |= 1 << 9
			s.WarningTimeCall, err = d.Int()
		case "alert_time_call":
			seen |= 1 << 10
			s.AlertTimeCall, err = d.Int()
		case "status":
			seen |= 1 << 11
			s.Status, err = d.Bool()
		case "updated_at":
			seen |= 1 << 12
			s.UpdatedAt, err = d.Str()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode Specialty")
	}

	return checkRequired("Specialty", seen, specialtyFields...)
}

// MarshalJSON implements json.Marshaler.
func (s Specialty) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Specialty) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// CreateSpecialtyRequest is the payload for creating a specialty. Only the
// two titles are required; unset optionals are left out of the encoded body.
type CreateSpecialtyRequest struct {
	Title           string    `json:"title"`
	TitleAr         string    `json:"title_ar"`
	Icon            OptString `json:"icon"`
	BackgroundColor OptString `json:"background_color"`
	ColorClass      OptString `json:"color_class"`
	Description     OptString `json:"description"`
	DescriptionAr   OptString `json:"description_ar"`
	TotalTimeCall   OptInt    `json:"total_time_call"`
	WarningTimeCall OptInt    `json:"warning_time_call"`
	AlertTimeCall   OptInt    `json:"alert_time_call"`
	Status          OptBool   `json:"status"`
}

// Encode encodes CreateSpecialtyRequest as json.
func (s *CreateSpecialtyRequest) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("title")
	e.Str(s.Title)
	e.FieldStart("title_ar")
	e.Str(s.TitleAr)
	for _, f := range []struct {
		name string
		v    OptString
	}{
		{"icon", s.Icon},
		{"background_color", s.BackgroundColor},
		{"color_class", s.ColorClass},
		{"description", s.Description},
		{"description_ar", s.DescriptionAr},
	} {
		if f.v.Set {
			e.FieldStart(f.name)
			f.v.Encode(e)
		}
	}
	for _, f := range []struct {
		name string
		v    OptInt
	}{
		{"total_time_call", s.TotalTimeCall},
		{"warning_time_call", s.WarningTimeCall},
		{"alert_time_call", s.AlertTimeCall},
	} {
		if f.v.Set {
			e.FieldStart(f.name)
			f.v.Encode(e)
		}
	}
	if s.Status.Set {
		e.FieldStart("status")
		s.Status.Encode(e)
	}
	e.ObjEnd()
}

// Decode decodes CreateSpecialtyRequest from json.
func (s *CreateSpecialtyRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode CreateSpecialtyRequest to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "title":
			seen |= 1 << 0
			s.Title, err = d.Str()
		case "title_ar":
			seen |= 1 << 1
			s.TitleAr, err = d.Str()
		case "icon":
			err = s.Icon.Decode(d)
		case "background_color":
			err = s.BackgroundColor.Decode(d)
		case "color_class":
			err = s.ColorClass.Decode(d)
		case "description":
			err = s.Description.Decode(d)
		case "description_ar":
			err = s.DescriptionAr.Decode(d)
		case "total_time_call":
			err = s.TotalTimeCall.Decode(d)
		case "warning_time_call":
			err = s.WarningTimeCall.Decode(d)
		case "alert_time_call":
			err = s.AlertTimeCall.Decode(d)
		case "status":
			err = s.Status.Decode(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode CreateSpecialtyRequest")
	}

	return checkRequired("CreateSpecialtyRequest", seen, "title", "title_ar")
}

// MarshalJSON implements json.Marshaler.
func (s CreateSpecialtyRequest) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CreateSpecialtyRequest) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// SpecialtyResponseData wraps a single specialty.
type SpecialtyResponseData struct {
	Specialty Specialty `json:"specialty"`
}

// Encode encodes SpecialtyResponseData as json.
func (s *SpecialtyResponseData) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("specialty")
	s.Specialty.Encode(e)
	e.ObjEnd()
}

// Decode decodes SpecialtyResponseData from json.
func (s *SpecialtyResponseData) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode SpecialtyResponseData to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "specialty":
			seen |= 1 << 0
			if err := s.Specialty.Decode(d); err != nil {
				return errors.Wrap(err, "decode field \"specialty\"")
			}
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode SpecialtyResponseData")
	}

	return checkRequired("SpecialtyResponseData", seen, "specialty")
}

// MarshalJSON implements json.Marshaler.
func (s SpecialtyResponseData) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SpecialtyResponseData) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// OptSpecialtyResponseData is optional SpecialtyResponseData. A null on the
// wire decodes as unset.
type OptSpecialtyResponseData struct {
	Value SpecialtyResponseData
	Set   bool
}

// NewOptSpecialtyResponseData returns new OptSpecialtyResponseData with value set to v.
func NewOptSpecialtyResponseData(v SpecialtyResponseData) OptSpecialtyResponseData {
	return OptSpecialtyResponseData{Value: v, Set: true}
}

// IsSet returns true if OptSpecialtyResponseData was set.
func (o OptSpecialtyResponseData) IsSet() bool { return o.Set }

// Get returns value and boolean that denotes whether value was set.
func (o OptSpecialtyResponseData) Get() (v SpecialtyResponseData, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Decode decodes SpecialtyResponseData from json.
func (o *OptSpecialtyResponseData) Decode(d *jx.Decoder) error {
	if o == nil {
		return errors.New("invalid: unable to decode OptSpecialtyResponseData to nil")
	}
	if d.Next() == jx.Null {
		*o = OptSpecialtyResponseData{}

		return d.Null()
	}
	o.Set = true

	return o.Value.Decode(d)
}

// MarshalJSON implements json.Marshaler. Unset values encode as null.
func (o OptSpecialtyResponseData) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return marshal(&o.Value), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptSpecialtyResponseData) UnmarshalJSON(data []byte) error {
	return unmarshal(data, o)
}

// SpecialtyResponse is the envelope returned by create, retrieve, update and
// delete calls. Delete answers with a message and no data; validation
// failures carry per-field Errors. Status is not restricted to the two
// ResponseStatus constants; only "error" makes Err report a failure.
type SpecialtyResponse struct {
	Status  ResponseStatus           `json:"status"`
	Message OptString                `json:"message"`
	Data    OptSpecialtyResponseData `json:"data"`
	Errors  FieldErrors              `json:"errors"`
}

// Encode encodes SpecialtyResponse as json.
func (s *SpecialtyResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("status")
	s.Status.Encode(e)
	if s.Message.Set {
		e.FieldStart("message")
		s.Message.Encode(e)
	}
	if s.Data.Set {
		e.FieldStart("data")
		s.Data.Value.Encode(e)
	}
	if s.Errors != nil {
		e.FieldStart("errors")
		s.Errors.Encode(e)
	}
	e.ObjEnd()
}

// Decode decodes SpecialtyResponse from json.
func (s *SpecialtyResponse) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode SpecialtyResponse to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "status":
			seen |= 1 << 0
			s.Status, err = decodeOpenStatus(d)
		case "message":
			err = s.Message.Decode(d)
		case "data":
			err = s.Data.Decode(d)
		case "errors":
			err = s.Errors.Decode(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode SpecialtyResponse")
	}

	return checkRequired("SpecialtyResponse", seen, "status")
}

// MarshalJSON implements json.Marshaler.
func (s SpecialtyResponse) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SpecialtyResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// Err converts an error envelope into a semantic error of kind
// serrors.ErrRemote. It returns nil for successful responses.
func (s *SpecialtyResponse) Err() error {
	return envelopeErr(s.Status, s.Message, s.Errors)
}

// Pagination describes one page of a page-number paginated listing. Next and
// Previous are absolute links, or null at either end of the listing. An empty
// link, as in a zero Pagination, counts as absent and encodes as null.
type Pagination struct {
	Count       int       `json:"count"`
	TotalPages  int       `json:"total_pages"`
	CurrentPage int       `json:"current_page"`
	PageSize    int       `json:"page_size"`
	Next        NilString `json:"next"`
	Previous    NilString `json:"previous"`
}

// HasNext reports whether a following page exists.
func (p Pagination) HasNext() bool { return hasLink(p.Next) }

// HasPrevious reports whether a preceding page exists.
func (p Pagination) HasPrevious() bool { return hasLink(p.Previous) }

func hasLink(l NilString) bool { return !l.Null && l.Value != "" }

func encodeLink(e *jx.Encoder, l NilString) {
	if !hasLink(l) {
		e.Null()

		return
	}
	e.Str(l.Value)
}

// Encode encodes Pagination as json.
func (p *Pagination) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("count")
	e.Int(p.Count)
	e.FieldStart("total_pages")
	e.Int(p.TotalPages)
	e.FieldStart("current_page")
	e.Int(p.CurrentPage)
	e.FieldStart("page_size")
	e.Int(p.PageSize)
	e.FieldStart("next")
	encodeLink(e, p.Next)
	e.FieldStart("previous")
	encodeLink(e, p.Previous)
	e.ObjEnd()
}

// Decode decodes Pagination from json. Next and Previous must be present
// but may be null.
func (p *Pagination) Decode(d *jx.Decoder) error {
	if p == nil {
		return errors.New("invalid: unable to decode Pagination to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "count":
			seen |= 1 << 0
			p.Count, err = d.Int()
		case "total_pages":
			seen |= 1 << 1
			p.TotalPages, err = d.Int()
		case "current_page":
			seen |= 1 << 2
			p.CurrentPage, err = d.Int()
		case "page_size":
			seen |= 1 << 3
			p.PageSize, err = d.Int()
		case "next":
			seen |= 1 << 4
			err = p.Next.Decode(d)
		case "previous":
			seen |= 1 << 5
			err = p.Previous.Decode(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode Pagination")
	}

	return checkRequired("Pagination", seen,
		"count", "total_pages", "current_page", "page_size", "next", "previous")
}

// MarshalJSON implements json.Marshaler.
func (p Pagination) MarshalJSON() ([]byte, error) {
	return marshal(&p), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	return unmarshal(data, p)
}

// NilPagination is a Pagination that may be null on the wire. The list
// endpoint answers with a null pagination when the requested limit is 0.
type NilPagination struct {
	Value Pagination
	Null  bool
}

// NewNilPagination returns new NilPagination with value set to v.
func NewNilPagination(v Pagination) NilPagination {
	return NilPagination{Value: v}
}

// IsNull returns true if value is Null.
func (o NilPagination) IsNull() bool { return o.Null }

// Get returns value and boolean that denotes whether value is not null.
func (o NilPagination) Get() (v Pagination, ok bool) {
	if o.Null {
		return v, false
	}

	return o.Value, true
}

// Encode encodes Pagination as json, or null.
func (o NilPagination) Encode(e *jx.Encoder) {
	if o.Null {
		e.Null()

		return
	}
	o.Value.Encode(e)
}

// Decode decodes Pagination or null from json.
func (o *NilPagination) Decode(d *jx.Decoder) error {
	if o == nil {
		return errors.New("invalid: unable to decode NilPagination to nil")
	}
	if d.Next() == jx.Null {
		*o = NilPagination{Null: true}

		return d.Null()
	}
	o.Null = false

	return o.Value.Decode(d)
}

// MarshalJSON implements json.Marshaler.
func (o NilPagination) MarshalJSON() ([]byte, error) {
	return marshal(o), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *NilPagination) UnmarshalJSON(data []byte) error {
	return unmarshal(data, o)
}

// SpecialtiesListData is one page of specialties. Pagination is null when
// the listing was not paginated.
type SpecialtiesListData struct {
	Specialties []Specialty   `json:"specialties"`
	Pagination  NilPagination `json:"pagination"`
}

// Encode encodes SpecialtiesListData as json.
func (s *SpecialtiesListData) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("specialties")
	e.ArrStart()
	for i := range s.Specialties {
		s.Specialties[i].Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("pagination")
	s.Pagination.Encode(e)
	e.ObjEnd()
}

// Decode decodes SpecialtiesListData from json.
func (s *SpecialtiesListData) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode SpecialtiesListData to nil")
	}
	var seen uint32
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "specialties":
			seen |= 1 << 0
			s.Specialties = make([]Specialty, 0)
			if err := d.Arr(func(d *jx.Decoder) error {
				var elem Specialty
				if err := elem.Decode(d); err != nil {
					return err
				}
				s.Specialties = append(s.Specialties, elem)

				return nil
			}); err != nil {
				return errors.Wrap(err, "decode field \"specialties\"")
			}
		case "pagination":
			seen |= 1 << 1
			if err := s.Pagination.Decode(d); err != nil {
				return errors.Wrap(err, "decode field \"pagination\"")
			}
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode SpecialtiesListData")
	}

	return checkRequired("SpecialtiesListData", seen, "specialties", "pagination")
}

// MarshalJSON implements json.Marshaler.
func (s SpecialtiesListData) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SpecialtiesListData) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// SpecialtiesListResponse is the envelope returned by the list endpoint.
// Data is required when Status is success; a null data decodes as zero.
// Status is not restricted to the two ResponseStatus constants.
type SpecialtiesListResponse struct {
	Status  ResponseStatus      `json:"status"`
	Message OptString           `json:"message"`
	Data    SpecialtiesListData `json:"data"`
}

// Encode encodes SpecialtiesListResponse as json. Data is left out of error
// envelopes.
func (s *SpecialtiesListResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("status")
	s.Status.Encode(e)
	if s.Message.Set {
		e.FieldStart("message")
		s.Message.Encode(e)
	}
	if s.Status != ResponseStatusError {
		e.FieldStart("data")
		s.Data.Encode(e)
	}
	e.ObjEnd()
}

// Decode decodes SpecialtiesListResponse from json.
func (s *SpecialtiesListResponse) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode SpecialtiesListResponse to nil")
	}
	var (
		seen    uint32
		hasData bool
	)
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		var err error
		switch string(k) {
		case "status":
			seen |= 1 << 0
			s.Status, err = decodeOpenStatus(d)
		case "message":
			err = s.Message.Decode(d)
		case "data":
			s.Data = SpecialtiesListData{}
			if d.Next() == jx.Null {
				return d.Null()
			}
			hasData = true
			err = s.Data.Decode(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", string(k))
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode SpecialtiesListResponse")
	}
	if err := checkRequired("SpecialtiesListResponse", seen, "status"); err != nil {
		return err
	}
	if s.Status == ResponseStatusSuccess && !hasData {
		return errors.New("decode SpecialtiesListResponse: missing required fields: data")
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s SpecialtiesListResponse) MarshalJSON() ([]byte, error) {
	return marshal(&s), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SpecialtiesListResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(data, s)
}

// Err converts an error envelope into a semantic error of kind
// serrors.ErrRemote. It returns nil for successful responses.
func (s *SpecialtiesListResponse) Err() error {
	return envelopeErr(s.Status, s.Message, nil)
}

// SpecialtyListParams are the query parameters accepted by the specialties
// list endpoint.
type SpecialtyListParams struct {
	// Page is the 1-based page number.
	Page OptInt
	// Limit is the requested page size, see PageSize.
	Limit OptInt
	// Status filters by the status flag.
	Status OptBool
	// Search matches English or Arabic titles.
	Search OptString
	// Ordering is one of id, title, title_ar, optionally prefixed with "-".
	Ordering OptString
}

// PageSize returns the page size the service reports for p: the default
// when Limit is unset, otherwise Limit capped at MaxSpecialtyPageSize. Zero
// and negative limits are not corrected; see Paginated.
func (p SpecialtyListParams) PageSize() int {
	limit, ok := p.Limit.Get()
	if !ok {
		return DefaultSpecialtyPageSize
	}

	return min(limit, MaxSpecialtyPageSize)
}

// Paginated reports whether the service paginates the listing. A zero
// limit disables pagination and the reply carries a null pagination.
func (p SpecialtyListParams) Paginated() bool {
	return p.PageSize() != 0
}

// Values encodes the set parameters as a query string.
func (p SpecialtyListParams) Values() url.Values {
	q := url.Values{}
	if v, ok := p.Page.Get(); ok {
		q.Set("page", strconv.Itoa(v))
	}
	if v, ok := p.Limit.Get(); ok {
		q.Set("limit", strconv.Itoa(v))
	}
	if v, ok := p.Status.Get(); ok {
		q.Set("status", strconv.FormatBool(v))
	}
	if v, ok := p.Search.Get(); ok {
		q.Set("search", v)
	}
	if v, ok := p.Ordering.Get(); ok {
		q.Set("ordering", v)
	}

	return q
}

// decodeOpenStatus reads a status string without restricting it to the
// ResponseStatus constants.
func decodeOpenStatus(d *jx.Decoder) (ResponseStatus, error) {
	v, err := d.Str()
	if err != nil {
		return "", err
	}

	return ResponseStatus(v), nil
}

func envelopeErr(status ResponseStatus, msg OptString, fields FieldErrors) error {
	if status != ResponseStatusError {
		return nil
	}
	text := remoteMessage(msg.Or(""))
	if len(fields) > 0 {
		text += ": " + fields.String()
	}

	return serrors.With(serrors.ErrRemote, "%s", text)
}
