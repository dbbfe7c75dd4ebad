package domain

import (
	"bytes"
	"encoding/json"
)

// User is a registered athlete as served by /api/users/.
type User struct {
	Identity
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserRef is the "user" field of activities, leaderboard entries and team
// members. The backend sends either an opaque identifier string or an
// embedded user object; both shapes are accepted.
type UserRef struct {
	// ID is set when the reference was a plain identifier string or number.
	ID ID
	// User is set when the reference was an embedded object.
	User *User
}

// UnmarshalJSON decodes either reference shape. null leaves the zero value.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = UserRef{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var u User
		if err := json.Unmarshal(data, &u); err != nil {
			return err
		}
		r.User = &u
		return nil
	}
	return r.ID.UnmarshalJSON(data)
}

// MarshalJSON writes the reference back in the shape it was received in.
func (r UserRef) MarshalJSON() ([]byte, error) {
	switch {
	case r.User != nil:
		return json.Marshal(r.User)
	case r.ID != "":
		return json.Marshal(string(r.ID))
	default:
		return []byte("null"), nil
	}
}

// IsEmbedded reports whether the reference carried a full user object.
func (r UserRef) IsEmbedded() bool { return r.User != nil }

// IsZero reports whether the reference was absent or null.
func (r UserRef) IsZero() bool { return r.User == nil && r.ID == "" }

// DisplayName returns the username of an embedded user, else the plain
// identifier, else the empty string.
func (r UserRef) DisplayName() string {
	if r.User != nil {
		if r.User.Username != "" {
			return r.User.Username
		}
		return r.User.Key()
	}
	return string(r.ID)
}
