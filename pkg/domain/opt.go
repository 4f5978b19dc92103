package domain

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// OptString is an optional string. Unset values are omitted when encoded.
type OptString struct {
	Value string
	Set   bool
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{Value: v, Set: true}
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}

	return d
}

// Encode encodes string as json.
func (o OptString) Encode(e *jx.Encoder) {
	if !o.Set {
		return
	}
	e.Str(o.Value)
}

// Decode decodes string from json.
func (o *OptString) Decode(d *jx.Decoder) error {
	if o == nil {
		return errors.New("invalid: unable to decode OptString to nil")
	}
	v, err := d.Str()
	if err != nil {
		return err
	}
	o.SetTo(v)

	return nil
}

// MarshalJSON implements json.Marshaler. Unset values encode as null.
func (o OptString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return marshal(o), nil
}

// UnmarshalJSON implements json.Unmarshaler. A null decodes as unset.
func (o *OptString) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		o.Reset()

		return nil
	}

	return unmarshal(data, o)
}

// OptInt is an optional int. Unset values are omitted when encoded.
type OptInt struct {
	Value int
	Set   bool
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{Value: v, Set: true}
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	o.Value = 0
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}

	return d
}

// Encode encodes int as json.
func (o OptInt) Encode(e *jx.Encoder) {
	if !o.Set {
		return
	}
	e.Int(o.Value)
}

// Decode decodes int from json.
func (o *OptInt) Decode(d *jx.Decoder) error {
	if o == nil {
		return errors.New("invalid: unable to decode OptInt to nil")
	}
	v, err := d.Int()
	if err != nil {
		return err
	}
	o.SetTo(v)

	return nil
}

// MarshalJSON implements json.Marshaler. Unset values encode as null.
func (o OptInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return marshal(o), nil
}

// UnmarshalJSON implements json.Unmarshaler. A null decodes as unset.
func (o *OptInt) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		o.Reset()

		return nil
	}

	return unmarshal(data, o)
}

// OptBool is an optional bool. Unset values are omitted when encoded.
type OptBool struct {
	Value bool
	Set   bool
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{Value: v, Set: true}
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	o.Value = false
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}

	return d
}

// Encode encodes bool as json.
func (o OptBool) Encode(e *jx.Encoder) {
	if !o.Set {
		return
	}
	e.Bool(o.Value)
}

// Decode decodes bool from json.
func (o *OptBool) Decode(d *jx.Decoder) error {
	if o == nil {
		return errors.New("invalid: unable to decode OptBool to nil")
	}
	v, err := d.Bool()
	if err != nil {
		return err
	}
	o.SetTo(v)

	return nil
}

// MarshalJSON implements json.Marshaler. Unset values encode as null.
func (o OptBool) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return marshal(o), nil
}

// UnmarshalJSON implements json.Unmarshaler. A null decodes as unset.
func (o *OptBool) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		o.Reset()

		return nil
	}

	return unmarshal(data, o)
}

// NilString is a string that may be null on the wire.
type NilString struct {
	Value string
	Null  bool
}

// NewNilString returns new NilString with value set to v.
func NewNilString(v string) NilString {
	return NilString{Value: v}
}

// NullString returns a NilString that encodes as null.
func NullString() NilString {
	return NilString{Null: true}
}

// IsNull returns true if value is Null.
func (o NilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilString) SetToNull() {
	o.Null = true
	o.Value = ""
}

// SetTo sets value to v.
func (o *NilString) SetTo(v string) {
	o.Null = false
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilString) Get() (v string, ok bool) {
	if o.Null {
		return v, false
	}

	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}

	return d
}

// Encode encodes string as json, or null.
func (o NilString) Encode(e *jx.Encoder) {
	if o.Null {
		e.Null()

		return
	}
	e.Str(o.Value)
}

// Decode decodes string or null from json.
func (o *NilString) Decode(d *jx.Decoder) error {
	if o == nil {
		return errors.New("invalid: unable to decode NilString to nil")
	}
	if d.Next() == jx.Null {
		if err := d.Null(); err != nil {
			return err
		}
		o.SetToNull()

		return nil
	}
	v, err := d.Str()
	if err != nil {
		return err
	}
	o.SetTo(v)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (o NilString) MarshalJSON() ([]byte, error) {
	return marshal(o), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *NilString) UnmarshalJSON(data []byte) error {
	return unmarshal(data, o)
}

// FieldErrors holds per-field validation messages reported by the remote
// service, e.g. {"title": ["Title must be at least 3 characters long"]}.
// A bare string value is decoded as a single-element slice; null decodes
// as nil.
type FieldErrors map[string][]string

// Encode encodes FieldErrors as json object with sorted keys.
func (f FieldErrors) Encode(e *jx.Encoder) {
	e.ObjStart()
	for _, k := range sortedKeys(f) {
		e.FieldStart(k)
		e.ArrStart()
		for _, msg := range f[k] {
			e.Str(msg)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

// Decode decodes FieldErrors from json.
func (f *FieldErrors) Decode(d *jx.Decoder) error {
	if f == nil {
		return errors.New("invalid: unable to decode FieldErrors to nil")
	}
	if d.Next() == jx.Null {
		*f = nil

		return d.Null()
	}
	m := FieldErrors{}
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		key := string(k)
		switch d.Next() {
		case jx.String:
			v, err := d.Str()
			if err != nil {
				return err
			}
			m[key] = append(m[key], v)

			return nil
		case jx.Array:
			return d.Arr(func(d *jx.Decoder) error {
				v, err := d.Str()
				if err != nil {
					return err
				}
				m[key] = append(m[key], v)

				return nil
			})
		default:
			return errors.Errorf("unexpected type for field %q errors", key)
		}
	}); err != nil {
		return errors.Wrap(err, "decode FieldErrors")
	}
	*f = m

	return nil
}

// MarshalJSON implements json.Marshaler. A nil map encodes as null.
func (f FieldErrors) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}

	return marshal(f), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FieldErrors) UnmarshalJSON(data []byte) error {
	return unmarshal(data, f)
}

// String renders field errors as "field: msg; field: msg" in key order.
func (f FieldErrors) String() string {
	parts := make([]string, 0, len(f))
	for _, k := range sortedKeys(f) {
		parts = append(parts, k+": "+strings.Join(f[k], ", "))
	}

	return strings.Join(parts, "; ")
}
