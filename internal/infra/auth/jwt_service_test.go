package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"madr/config"
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/errors"
	mockSvc "madr/internal/mocks/service"
)

const testSecret = "test_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestTokenService(t *testing.T, ttl time.Duration) (service *jwtService, clock *fakeClock, finder *mockSvc.MockAccountFinder) {
	t.Helper()

	clock = &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	finder = mockSvc.NewMockAccountFinder(t)

	svc, err := NewJWTService(TokenConfig{
		Secret:    []byte(testSecret),
		Algorithm: "HS256",
		TTL:       ttl,
		Now:       clock.Now,
	}, finder)
	require.NoError(t, err)

	return svc.(*jwtService), clock, finder
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := NewJWTService(TokenConfig{Algorithm: "HS256", TTL: time.Minute}, nil)
	assert.ErrorContains(t, err, "jwt secret must be provided")

	_, err = NewJWTService(TokenConfig{Secret: []byte(testSecret), Algorithm: "HS256"}, nil)
	assert.ErrorContains(t, err, "jwt ttl must be positive")

	_, err = NewJWTService(TokenConfig{Secret: []byte(testSecret), Algorithm: "RS256", TTL: time.Minute}, nil)
	assert.ErrorContains(t, err, "unsupported jwt algorithm")

	_, err = NewJWTService(TokenConfig{Secret: []byte(testSecret), Algorithm: "HS512", TTL: time.Minute}, nil)
	assert.NoError(t, err)
}

func TestNewTokenConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = testSecret
	cfg.Auth.Algorithm = "HS384"
	cfg.Auth.AccessTokenTTL = 30 * time.Minute

	tokenCfg := NewTokenConfig(cfg)
	assert.Equal(t, []byte(testSecret), tokenCfg.Secret)
	assert.Equal(t, "HS384", tokenCfg.Algorithm)
	assert.Equal(t, 30*time.Minute, tokenCfg.TTL)
	assert.NotNil(t, tokenCfg.Now)
}

func TestJWTService_IssueProducesCompactToken(t *testing.T) {
	svc, clock, _ := newTestTokenService(t, time.Hour)

	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	assert.Len(t, strings.Split(token.Token, "."), 3)
	assert.Equal(t, entity.TokenTypeBearer, token.Type)
	assert.Equal(t, "a@x.com", token.Subject)
	assert.Equal(t, clock.now.Add(time.Hour), token.ExpiresAt)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.Token, claims)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, clock.now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_IssueRejectsEmptySubject(t *testing.T) {
	svc, _, _ := newTestTokenService(t, time.Hour)

	token, err := svc.Issue("")
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_VerifyWithinTTL(t *testing.T) {
	svc, clock, finder := newTestTokenService(t, time.Hour)
	account := &entity.Account{ID: uuid.New(), Email: "a@x.com"}
	finder.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(account, nil).Times(3)

	issuedAt := clock.now
	token, err := svc.Issue(account.Email)
	require.NoError(t, err)

	for _, offset := range []time.Duration{0, 30 * time.Minute, time.Hour - time.Nanosecond} {
		clock.now = issuedAt.Add(offset)
		got, err := svc.Verify(context.Background(), token.Token)
		require.NoError(t, err, "offset %s", offset)
		assert.Equal(t, account, got)
	}
}

func TestJWTService_VerifyExpired(t *testing.T) {
	svc, clock, _ := newTestTokenService(t, time.Hour)

	issuedAt := clock.now
	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	for _, offset := range []time.Duration{time.Hour, time.Hour + time.Second, 48 * time.Hour} {
		clock.now = issuedAt.Add(offset)
		got, err := svc.Verify(context.Background(), token.Token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken, "offset %s", offset)
		assert.Nil(t, got)
	}
}

func TestJWTService_SubSecondIssuanceKeepsFullTTL(t *testing.T) {
	svc, clock, finder := newTestTokenService(t, time.Hour)
	finder.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(&entity.Account{Email: "a@x.com"}, nil).Once()

	clock.now = clock.now.Add(900 * time.Millisecond)
	issuedAt := clock.now.Truncate(time.Second)
	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), token.ExpiresAt)

	clock.now = token.ExpiresAt.Add(-time.Nanosecond)
	_, err = svc.Verify(context.Background(), token.Token)
	require.NoError(t, err)

	clock.now = token.ExpiresAt
	_, err = svc.Verify(context.Background(), token.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_VerifyRejectsTamperedAndForeignTokens(t *testing.T) {
	svc, clock, _ := newTestTokenService(t, time.Hour)

	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString([]byte("another_secret"))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "a@x.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"appended character": token.Token + "x",
		"foreign secret":     foreign,
		"none algorithm":     noneAlg,
		"missing expiry":     noExpiry,
		"not a jwt":          "clearly-not-a-jwt-token-format",
		"empty":              "",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := svc.Verify(context.Background(), raw)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
			assert.Nil(t, got)
		})
	}
}

func TestJWTService_VerifyMissingSubject(t *testing.T) {
	svc, clock, _ := newTestTokenService(t, time.Hour)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_VerifyUnknownSubject(t *testing.T) {
	svc, _, finder := newTestTokenService(t, time.Hour)
	finder.EXPECT().FindByEmail(mock.Anything, "gone@x.com").Return(nil, repository.ErrAccountNotFound)

	token, err := svc.Issue("gone@x.com")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_VerifyStoreFailureIsNotInvalidToken(t *testing.T) {
	svc, _, finder := newTestTokenService(t, time.Hour)
	storeErr := errors.New("connection refused")
	finder.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(nil, storeErr)

	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token.Token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.ErrorIs(t, err, storeErr)
}

func TestJWTService_RefreshExtendsExpiryWithoutRevoking(t *testing.T) {
	svc, clock, finder := newTestTokenService(t, time.Hour)
	account := &entity.Account{ID: uuid.New(), Email: "a@x.com"}
	finder.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(account, nil)

	original, err := svc.Issue(account.Email)
	require.NoError(t, err)

	clock.now = clock.now.Add(40 * time.Minute)
	refreshed, err := svc.Refresh(account)
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(time.Hour), refreshed.ExpiresAt)
	assert.True(t, refreshed.ExpiresAt.After(original.ExpiresAt))

	// The original token is still accepted until its own expiry.
	clock.now = original.ExpiresAt.Add(-time.Second)
	_, err = svc.Verify(context.Background(), original.Token)
	assert.NoError(t, err)

	clock.now = original.ExpiresAt
	_, err = svc.Verify(context.Background(), original.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.Verify(context.Background(), refreshed.Token)
	assert.NoError(t, err)
}
