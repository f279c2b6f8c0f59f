package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Session is the process-wide record of who, if anyone, is logged in.
// Invariant: IsAuthenticated == (CurrentUser != nil).
type Session struct {
	CurrentUser     *User
	IsAuthenticated bool
}

var ErrSessionNotFound = errors.New("no persisted session")
var ErrCorruptSession = errors.New("corrupt persisted session")

// Persisted session layout. Two string keys in the backing key/value store:
// KeyCurrentUser holds the JSON-encoded user, KeyIsAuthenticated holds the
// literal "true" when a session is active.
const (
	KeyCurrentUser     = "currentUser"
	KeyIsAuthenticated = "isAuthenticated"

	AuthenticatedValue = "true"
)

// EncodeUser serialises a user for the persisted session record.
func EncodeUser(u *User) ([]byte, error) {
	if u == nil {
		return nil, fmt.Errorf("encode session user: %w", ErrCorruptSession)
	}
	return json.Marshal(u)
}

// DecodeUser deserialises and schema-validates a persisted session record.
// Any malformed payload (bad JSON, unknown fields, an unknown role, or a
// variant profile that disagrees with the role) is reported as
// ErrCorruptSession so callers have a single recovery path (fail open to
// anonymous, never crash).
func DecodeUser(data []byte) (*User, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var u User
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("decode session user: %w", ErrCorruptSession)
	}
	if u.ID == "" || u.Email == "" || !u.Role.Valid() || !u.consistent() {
		return nil, fmt.Errorf("validate session user: %w", ErrCorruptSession)
	}
	return &u, nil
}
