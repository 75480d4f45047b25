package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer значение iss в выпускаемых токенах
const Issuer = "lightnotes"

// ErrInvalidToken возвращается при невалидном или просроченном токене
var ErrInvalidToken = errors.New("invalid token")

// CustomClaims представляет JWT claims клиента хранилища
type CustomClaims struct {
	// Client имя клиента (устройства), которому выдан токен
	Client string `json:"client"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret []byte
	// TokenTTL время жизни токена; 0 означает бессрочный токен
	TokenTTL time.Duration
}

// GenerateToken создает новый подписанный токен для клиента.
// Возвращает токен и время истечения (нулевое для бессрочного).
func GenerateToken(cfg JWTConfig, client string) (string, time.Time, error) {
	now := time.Now()

	claims := CustomClaims{
		Client: client,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   client,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
		},
	}

	var expiresAt time.Time
	if cfg.TokenTTL > 0 {
		expiresAt = now.Add(cfg.TokenTTL)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken валидирует и парсит JWT токен клиента
func ValidateToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	}, jwt.WithIssuer(Issuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid && claims.Client != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
