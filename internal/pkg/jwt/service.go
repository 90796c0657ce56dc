package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const RoleServiceRole = "service_role"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims follow the platform's API key tokens: a role plus the registered set.
type Claims struct {
	Role string `json:"role"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Issue(role string, ttl time.Duration) (string, error)
	Validate(tokenString string) (Claims, error)
}

type HMACService struct {
	secret []byte
	issuer string

	now func() time.Time
}

func NewHMACService(secret, issuer string) *HMACService {
	return &HMACService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs a token for role; ttl <= 0 yields a token without expiry.
func (s *HMACService) Issue(role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 || role == "" {
		return "", ErrTokenInvalid
	}
	now := s.now().UTC()
	c := Claims{
		Role: role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:   s.issuer,
			IssuedAt: jwtlib.NewNumericDate(now),
			Subject:  role,
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwtlib.NewNumericDate(now.Add(ttl))
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) Validate(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid || c.Role == "" {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

var _ Service = (*HMACService)(nil)
