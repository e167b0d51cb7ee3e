package domain

import "time"

// TokenIssuer issues session tokens (e.g. JWT) for a trip code that has
// been presented successfully.
type TokenIssuer interface {
	Issue(tripCode string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the trip code it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// CodeGenerator produces new shareable trip codes.
type CodeGenerator interface {
	Generate() (string, error)
}
