package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/token"
	pkgauth "github.com/stayforge/hotel-booking-service/pkg/auth"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
)

const (
	PrincipalTypeUser pkgauth.PrincipalType = "user"

	authorizationHeader = "Authorization"
	bearerTokenPrefix   = "Bearer "
)

type UserToken string

func (t UserToken) Type() pkgauth.PrincipalType {
	return PrincipalTypeUser
}

// BearerTokenProvider extracts the raw token from the Authorization header.
// A header without the Bearer prefix counts as no token at all.
func BearerTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	header := r.Header.Get(authorizationHeader)
	if !strings.HasPrefix(header, bearerTokenPrefix) {
		return nil, false
	}

	return UserToken(strings.TrimPrefix(header, bearerTokenPrefix)), true
}

type UserPrincipal struct {
	UserID int64
	Email  string
}

func (p UserPrincipal) Type() pkgauth.PrincipalType {
	return PrincipalTypeUser
}

func (p UserPrincipal) ID() *string {
	id := strconv.FormatInt(p.UserID, 10)
	return &id
}

type authProvider struct {
	tokenCodec token.Codec
}

func NewAuthProvider(tokenCodec token.Codec) pkgauth.Provider[UserPrincipal] {
	return authProvider{tokenCodec: tokenCodec}
}

func (p authProvider) Authenticate(_ context.Context, authToken pkgauth.Token) (pkgauth.Authentication[UserPrincipal], error) {
	userToken, ok := authToken.(UserToken)
	if !ok {
		return nil, fmt.Errorf("unsupported token type %s", authToken.Type())
	}

	claims, err := p.tokenCodec.Decode(string(userToken))
	if errors.Is(err, token.ErrInvalidToken) {
		return nil, pkgauth.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	return pkgauth.Auth[UserPrincipal]{AuthPrincipal: &UserPrincipal{
		UserID: claims.UserID,
		Email:  claims.Email,
	}}, nil
}

func getAuthenticatedUser(r *http.Request) (UserPrincipal, error) {
	authentication, ok := pkgauth.GetAuthentication[UserPrincipal](r.Context())
	if !ok || authentication.Principal() == nil {
		return UserPrincipal{}, pkgauth.ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}

var _ pkghttp.AuthTokenProvider = BearerTokenProvider
