package domain

import (
	"bytes"         // Null detection
	"encoding/json" // Raw field values from the store document
	"math"          // Integral check for numeric ids
	"strings"       // Blank role detection
)

// Placeholders used when a stored field is missing or unusable
const (
	DefaultName = "User"
	DefaultRole = "user"
)

// SeedCount is the number of records guaranteed after loading the store
const SeedCount = 2

// maxExactID is the largest integer a JSON number carries without loss
const maxExactID = 1 << 53

// User Model
type User struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement:false"` // Primary key
	Name string `json:"name" gorm:"not null"`                     // Display name
	Role string `json:"role" gorm:"not null;default:user"`        // Role label
}

// RawUser is a users entry exactly as it appears in the store document.
// A nil field was absent.
type RawUser struct {
	ID   json.RawMessage `json:"id,omitempty"`   // Any JSON value
	Name json.RawMessage `json:"name,omitempty"` // Any JSON value
	Role json.RawMessage `json:"role,omitempty"` // Any JSON value
}

// UnmarshalJSON matches the keys id, name and role exactly. Differently
// cased keys ("ID", "Name") are ignored and a repeated key keeps its last
// value.
func (r *RawUser) UnmarshalJSON(data []byte) error {
	fields, err := Object(data)
	if err != nil {
		return err
	}
	*r = RawUser{ID: fields["id"], Name: fields["name"], Role: fields["role"]}
	return nil
}

// Object decodes data as a JSON object keyed by exact member names. null
// yields an empty map; any other non-object value is an error.
func Object(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage // Case-sensitive, unlike struct decoding
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ParsedUser holds the per-field outcome of parsing a RawUser. A nil field
// failed to parse and gets a default during normalization.
type ParsedUser struct {
	ID   *int64
	Name *string
	Role *string
}

// SeedUser returns the seed record for position index (0: Admin, 1: User)
func SeedUser(index int) RawUser {
	if index == 0 {
		return NewRawUser(User{ID: 1, Name: "Admin", Role: "admin"})
	}
	return NewRawUser(User{ID: int64(index) + 1, Name: DefaultName, Role: DefaultRole})
}

// SeedUsers returns the default record set
func SeedUsers() []RawUser {
	users := make([]RawUser, 0, SeedCount)
	for i := 0; i < SeedCount; i++ {
		users = append(users, SeedUser(i))
	}
	return users
}

// NewRawUser encodes a typed user as a stored entry
func NewRawUser(u User) RawUser {
	id, _ := json.Marshal(u.ID)
	name, _ := json.Marshal(u.Name)
	role, _ := json.Marshal(u.Role)
	return RawUser{ID: id, Name: name, Role: role}
}

// NumericID reports the entry's id when it is an integral JSON number
func (r RawUser) NumericID() (int64, bool) {
	return Number(r.ID)
}

// Parse inspects every field of r independently
func Parse(r RawUser) ParsedUser {
	var p ParsedUser
	if id, ok := Number(r.ID); ok {
		p.ID = &id
	}
	if name, ok := Text(r.Name); ok && name != "" {
		p.Name = &name
	}
	if role, ok := Text(r.Role); ok && strings.TrimSpace(role) != "" {
		p.Role = &role
	}
	return p
}

// Normalize fills failed fields with their defaults. index is the record's
// position in the list it was read from; a missing id becomes index+1.
func (p ParsedUser) Normalize(index int) User {
	u := User{ID: int64(index) + 1, Name: DefaultName, Role: DefaultRole}
	if p.ID != nil {
		u.ID = *p.ID
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}

// Normalize parses r and applies the defaults for position index
func Normalize(r RawUser, index int) User {
	return Parse(r).Normalize(index)
}

// Number decodes raw as an integral JSON number. Fractional values such as
// 1.5 and values beyond 2^53 are not ids: callers treat them like a missing
// id (position-based during normalization, skipped by Create and Delete).
func Number(raw json.RawMessage) (int64, bool) {
	if isAbsent(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false // Strings, booleans, objects
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExactID {
		return 0, false
	}
	return int64(f), true
}

// Text decodes raw as a JSON string
func Text(raw json.RawMessage) (string, bool) {
	if isAbsent(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// isAbsent treats a missing field and an explicit null alike; json.Unmarshal
// would otherwise decode null into a zero value without error.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
