package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the Supabase access-token claims the service reads.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier accepts HS256 tokens signed with the project secret and RS256
// tokens signed by a key from the JWKS provider.
type Verifier struct {
	secret []byte
	jwks   *Provider
}

func NewVerifier(secret string, jwks *Provider) *Verifier {
	return &Verifier{secret: []byte(secret), jwks: jwks}
}

// Parse verifies a user access token. The token must carry a subject.
func (v *Verifier) Parse(tokenString string) (*Claims, error) {
	claims, err := v.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

// ParseProjectKey verifies any token signed for the project, including the
// subject-less anon key that browsers send as apikey.
func (v *Verifier) ParseProjectKey(tokenString string) (*Claims, error) {
	return v.parse(tokenString)
}

func (v *Verifier) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc,
		jwt.WithValidMethods([]string{"HS256", "RS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if len(v.secret) == 0 {
			return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA:
		if v.jwks == nil {
			return nil, fmt.Errorf("RS256 token received but SUPABASE_URL is not configured")
		}
		return v.jwks.KeyFunc(token)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}
