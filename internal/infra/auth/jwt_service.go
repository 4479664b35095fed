package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"madr/config"
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/domain/service"
	"madr/internal/errors"
)

// TokenConfig is the immutable signing configuration of the token service.
type TokenConfig struct {
	Secret    []byte
	Algorithm string
	TTL       time.Duration
	Now       func() time.Time // Clock used for issuance and expiry checks; defaults to time.Now.
}

// NewTokenConfig reads the auth section of the application configuration.
func NewTokenConfig(cfg *config.Config) TokenConfig {
	return TokenConfig{
		Secret:    []byte(cfg.Auth.SecretKey),
		Algorithm: cfg.Auth.Algorithm,
		TTL:       cfg.Auth.AccessTokenTTL,
		Now:       time.Now,
	}
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte
	method   jwt.SigningMethod
	ttl      time.Duration
	now      func() time.Time
	parser   *jwt.Parser
	accounts service.AccountFinder
}

// NewJWTService is the constructor for jwtService. Only HMAC algorithms are accepted.
func NewJWTService(cfg TokenConfig, accounts service.AccountFinder) (service.TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", cfg.Algorithm)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret: cfg.Secret,
		method: method,
		ttl:    cfg.TTL,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithTimeFunc(now),
			jwt.WithExpirationRequired(),
		),
		accounts: accounts,
	}, nil
}

// Issue signs {sub, iat, exp} with the server secret. Claims carry whole
// seconds, so the issuance time is truncated to the second and the token stays
// valid for exactly the TTL after the reported issuance.
func (s *jwtService) Issue(subject string) (*entity.AccessToken, error) {
	if subject == "" {
		return nil, errors.New("token subject must not be empty")
	}

	issuedAt := s.now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   subject,                                 // Subject (the account email)
		IssuedAt:  jwt.NewNumericDate(issuedAt),            // Issued At
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)), // Expiration Time
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	return &entity.AccessToken{
		Token:     signed,
		Type:      entity.TokenTypeBearer,
		Subject:   subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify resolves a bearer token to its account. Malformed, tampered, expired,
// subject-less and orphaned tokens all yield ErrInvalidToken.
func (s *jwtService) Verify(ctx context.Context, token string) (*entity.Account, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	account, err := s.accounts.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "resolve token subject")
	}

	return account, nil
}

// Refresh issues a new token for the account with a freshly computed expiry.
func (s *jwtService) Refresh(account *entity.Account) (*entity.AccessToken, error) {
	if account == nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return s.Issue(account.Email)
}
