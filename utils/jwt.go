package utils

import (
	"errors"
	"time"

	"glowdesk/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "glowdesk-dev"
	}
	return []byte(secret)
}

// GenerateSessionToken creates a signed JWT carrying a booking session id and
// the salon it belongs to. The widget presents it on every workflow call so a
// session can never be replayed against another salon.
func GenerateSessionToken(sessionID, salonID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   sessionID,
		"salon": salonID,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseSessionToken validates a session token and returns the session and
// salon ids it carries.
func ParseSessionToken(tokenString string) (sessionID, salonID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sessionID, _ = claims["sub"].(string)
	salonID, _ = claims["salon"].(string)
	if sessionID == "" || salonID == "" {
		return "", "", errors.New("token missing session claims")
	}
	return sessionID, salonID, nil
}
