package scope

import "time"

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(s Scope) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// New creates an HS256 token manager.
func New(secretKey, issuer string, ttl time.Duration) (Manager, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &implManager{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}
