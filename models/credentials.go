package models

// Credentials is the login request payload.
type Credentials struct {
	// Username is the account login (student code, lecturer code, or
	// admin username).
	Username string `json:"username"`

	// Password is the plaintext password, sent only to the login
	// endpoint over TLS.
	Password string `json:"password"`
}
