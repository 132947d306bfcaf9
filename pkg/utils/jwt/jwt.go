package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"intake_backend/pkg/config"
)

type Claims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

var (
	jwtSecret = []byte("dev-only-secret")
	expiresIn = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Init wires the signing secret and token lifetime from configuration.
func Init(cfg config.JWTConfig) {
	jwtSecret = []byte(cfg.Secret)
	expiresIn = time.Duration(cfg.ExpiresHours) * time.Hour
}

func GenerateToken(adminID uint, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AdminID: adminID,
		Email:   email,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
