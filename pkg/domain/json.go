package domain

import (
	"bytes"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// encoder is implemented by every wire shape in this package.
type encoder interface {
	Encode(e *jx.Encoder)
}

// decoder is implemented by pointers to every wire shape in this package.
type decoder interface {
	Decode(d *jx.Decoder) error
}

// marshal encodes v into a fresh buffer.
func marshal(v encoder) []byte {
	e := jx.Encoder{}
	v.Encode(&e)

	return e.Bytes()
}

// unmarshal decodes data into v and rejects trailing garbage.
func unmarshal(data []byte, v decoder) error {
	d := jx.DecodeBytes(data)
	if err := v.Decode(d); err != nil {
		return err
	}
	if d.Next() != jx.Invalid {
		return errors.New("unexpected trailing data")
	}

	return nil
}

// checkRequired reports the required fields of typ whose bit is missing from
// seen. Bit i of seen corresponds to fields[i].
func checkRequired(typ string, seen uint32, fields ...string) error {
	var missing []string
	for i, f := range fields {
		if seen&(1<<uint(i)) == 0 {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return errors.Errorf("decode %s: missing required fields: %s", typ, strings.Join(missing, ", "))
}

var jsonNull = []byte("null")

// isNull reports whether data is the JSON null literal.
func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), jsonNull)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
