package entity

import "time"

// TokenTypeBearer is the token_type reported to clients for every access token.
const TokenTypeBearer = "bearer"

// AccessToken is a signed, self-contained bearer token. It is never persisted.
type AccessToken struct {
	Token     string
	Type      string
	Subject   string
	ExpiresAt time.Time
}
