package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apptoken "github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/token"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type codec struct {
	secret    []byte
	tokenTTL  time.Duration
	timestamp func() time.Time
}

func NewCodec(secret string, tokenTTL time.Duration) apptoken.Codec {
	return &codec{
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		timestamp: time.Now,
	}
}

func (c *codec) Issue(userID int64, email string) (string, apptoken.Claims, error) {
	issuedAt := c.timestamp().Truncate(time.Second)
	expiresAt := issuedAt.Add(c.tokenTTL)

	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", apptoken.Claims{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, apptoken.Claims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (c *codec) Decode(tokenValue string) (apptoken.Claims, error) {
	var claims jwtClaims
	parsed, err := jwt.ParseWithClaims(
		tokenValue,
		&claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.timestamp),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return apptoken.Claims{}, apptoken.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return apptoken.Claims{}, apptoken.ErrInvalidToken
	}

	return apptoken.Claims{
		UserID:    userID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
