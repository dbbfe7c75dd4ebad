package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a record identifier as the backend sends it. Document stores hand
// out string ids under "_id"; relational backends use integers under "id".
// Both decode into the same string form.
type ID string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidID
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as text.
func (id ID) String() string { return string(id) }

// Identity carries both identifier spellings a record may use.
type Identity struct {
	MongoID ID `json:"_id,omitempty"`
	PlainID ID `json:"id,omitempty"`
}

// Key returns the identifier used to address the record, preferring "_id".
func (i Identity) Key() string {
	if i.MongoID != "" {
		return string(i.MongoID)
	}
	return string(i.PlainID)
}

// KeyOr returns Key, or a positional fallback when the record has no id.
func (i Identity) KeyOr(pos int) string {
	if k := i.Key(); k != "" {
		return k
	}
	return "#" + strconv.Itoa(pos)
}
