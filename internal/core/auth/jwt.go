package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the user identity inside the bearer token: subject
// id plus username and email.
type Claims struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// JWTer is built once at startup from config and handed to the auth
// service; nothing reads signing material from the environment at
// request time.
type JWTer struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

func (j *JWTer) Issue(uid, userName, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserName: userName,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    j.Issuer,
			Audience:  jwt.ClaimStrings{j.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithAudience(j.Audience), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
