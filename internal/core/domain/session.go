package domain

import "encoding/json"

// User is the authenticated profile returned by the backend on login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the persisted token+user pair establishing console
// authentication state. Token and user live in one value so they are always
// written and cleared together — a session missing either half is invalid.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session carries both a token and a user.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != ""
}

// EncodeSession serialises a session for storage.
func EncodeSession(s Session) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSession deserialises a stored session. Malformed or partial data
// fails closed: the caller gets ErrSessionNotFound, never a panic or a
// half-populated session.
func DecodeSession(raw []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, ErrSessionNotFound
	}
	if !s.Valid() {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}
