package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	apperrors "theatre-booking/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const magicLinkAudience = "magic-link"

// TokenIssuer signs access tokens and magic-link tokens with separate HS256 secrets.
type TokenIssuer struct {
	accessSecret    []byte
	magicLinkSecret []byte
	accessTTL       time.Duration
	refreshTTL      time.Duration
	magicLinkTTL    time.Duration
	now             func() time.Time
}

type TokenConfig struct {
	AccessSecret    string
	MagicLinkSecret string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	MagicLinkTTL    time.Duration
}

func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:    []byte(cfg.AccessSecret),
		magicLinkSecret: []byte(cfg.MagicLinkSecret),
		accessTTL:       cfg.AccessTTL,
		refreshTTL:      cfg.RefreshTTL,
		magicLinkTTL:    cfg.MagicLinkTTL,
		now:             time.Now,
	}
}

func (i *TokenIssuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}

func (i *TokenIssuer) MagicLinkTTL() time.Duration {
	return i.magicLinkTTL
}

// NewAccessToken returns a signed JWT whose subject is the user id.
func (i *TokenIssuer) NewAccessToken(userID uuid.UUID) (string, error) {
	now := i.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.accessSecret)
}

// ParseAccessToken validates signature and expiry and returns the subject.
func (i *TokenIssuer) ParseAccessToken(raw string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, i.keyFunc(i.accessSecret),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return userID, nil
}

type magicLinkClaims struct {
	Destination string `json:"dest"`
	jwt.RegisteredClaims
}

// NewMagicLinkToken signs a short-lived token carrying the destination email.
// The jti is used to make the link single-use.
func (i *TokenIssuer) NewMagicLinkToken(destination string) (string, error) {
	now := i.now().UTC()
	claims := magicLinkClaims{
		Destination: destination,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{magicLinkAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.magicLinkTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.magicLinkSecret)
}

// MagicLink is a verified magic-link token.
type MagicLink struct {
	TokenID     string
	Destination string
	ExpiresAt   time.Time
}

func (i *TokenIssuer) ParseMagicLinkToken(raw string) (*MagicLink, error) {
	claims := &magicLinkClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, i.keyFunc(i.magicLinkSecret),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(magicLinkAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || claims.Destination == "" || claims.ID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return &MagicLink{
		TokenID:     claims.ID,
		Destination: claims.Destination,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (i *TokenIssuer) keyFunc(secret []byte) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}
}

// NewRefreshToken returns 32 random bytes hex-encoded. Only HashToken(raw) is persisted.
func NewRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
