// Package auth verifies identity tokens issued by the identity provider.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"sos/config"
	"sos/internal/domain/entity"
	"sos/internal/domain/service"
)

const clockLeeway = 30 * time.Second

// Claims are the identity claims the SOS service relies on.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// jwtService verifies HS256 access tokens.
type jwtService struct {
	secret []byte
	issuer string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Identity == nil || cfg.Identity.Secret == "" {
		return nil, errors.New("identity secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Identity.Secret),
		issuer: cfg.Identity.Issuer,
	}, nil
}

// VerifyToken validates the signature, expiry and issuer and returns the caller the token names.
func (s *jwtService) VerifyToken(tokenString string) (*entity.Caller, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockLeeway),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid identity token")
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("identity token has no subject")
	}

	return &entity.Caller{
		OwnerID:     claims.Subject,
		DisplayName: claims.Name,
		Phone:       claims.Phone,
	}, nil
}
