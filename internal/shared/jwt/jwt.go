package jwt

import (
	"errors"
	"os"
	"strconv"
	"time"

	jw "github.com/golang-jwt/jwt/v5"
)

var configured []byte

// Configure sets the signing secret from config. An empty value clears it,
// falling back to the JWT_SECRET environment variable and then to the
// development default.
func Configure(secret string) { configured = []byte(secret) }

func secret() []byte {
	if len(configured) > 0 {
		return configured
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("replace-this-with-a-strong-secret")
}

func Make(userID uint) (string, error) {
	claims := jw.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	return jw.NewWithClaims(jw.SigningMethodHS256, claims).SignedString(secret())
}

func Parse(tok string) (uint, error) {
	t, err := jw.Parse(tok, func(t *jw.Token) (any, error) { return secret(), nil })
	if err != nil || !t.Valid {
		return 0, errors.New("invalid token")
	}
	mc, ok := t.Claims.(jw.MapClaims)
	if !ok {
		return 0, errors.New("bad claims")
	}
	sub, _ := mc["sub"].(string)
	uid, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || uid == 0 {
		return 0, errors.New("bad subject")
	}
	return uint(uid), nil
}
