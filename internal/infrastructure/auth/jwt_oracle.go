package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"upi_escrow/internal/domain/entities"
	"upi_escrow/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

// JWTOracle verifies HS256 bearer tokens whose "sub" claim names the
// principal the caller acts for.
type JWTOracle struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.IAuthorizationOracle = (*JWTOracle)(nil)

func NewJWTOracle(secret string) (*JWTOracle, error) {
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &JWTOracle{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a proof for principal valid for ttl.
func (o *JWTOracle) Issue(principal entities.Principal, ttl time.Duration) (entities.AuthorizationProof, error) {
	now := o.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   string(principal),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString(o.secret)
	if err != nil {
		return "", fmt.Errorf("sign proof: %w", err)
	}
	return entities.AuthorizationProof(signed), nil
}

func (o *JWTOracle) Verify(_ context.Context, proof entities.AuthorizationProof, principal entities.Principal) (bool, error) {
	if proof == "" {
		return false, nil
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(string(proof), claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return o.secret, nil
	})
	if err != nil {
		log.Printf("[escrow][auth] proof rejected principal=%s err=%v", principal, err)
		return false, nil
	}
	if !token.Valid {
		log.Printf("[escrow][auth] proof invalid principal=%s", principal)
		return false, nil
	}
	if claims.Subject != string(principal) {
		log.Printf("[escrow][auth] proof subject mismatch principal=%s subject=%s", principal, claims.Subject)
		return false, nil
	}
	return true, nil
}
