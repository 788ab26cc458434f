package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

type JWTServiceInterface interface {
	GenerateJWT(username string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("airgead-dev-secret")

// SetSecret replaces the signing key. Called once at startup with the
// configured secret before any token is issued or validated.
func SetSecret(secret string) {
	secretKey = []byte(secret)
}

type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(username string, expirationTime time.Time) (string, error) {
	claims := Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "airgead",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Username == "" || claims.Issuer != "airgead" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
