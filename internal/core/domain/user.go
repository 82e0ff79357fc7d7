package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid email or password")

// User models the single authenticated account. The JSON field names match
// the persisted blob layout.
type User struct {
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}
