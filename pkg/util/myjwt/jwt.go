package myjwt

import (
	"HealthPredict/internal/config"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Uuid     string `json:"uuid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TTL token 有效期
func TTL() time.Duration {
	expireHours := config.GetConfig().JwtConfig.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	return time.Duration(expireHours) * time.Hour
}

func GenerateToken(uuid, username, email string) (string, error) {
	conf := config.GetConfig()
	key := conf.JwtConfig.Key
	if key == "" {
		return "", errors.New("jwt key is empty")
	}

	issuer := conf.JwtConfig.Issuer
	if issuer == "" {
		issuer = conf.MainConfig.AppName
	}

	now := time.Now()
	claims := CustomClaims{
		Uuid:     uuid,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   uuid,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	key := config.GetConfig().JwtConfig.Key
	if key == "" {
		return nil, errors.New("jwt key is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(key), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
