package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	apptoken "github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/token"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	domainmock "github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain/mock"
	infrahttp "github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/http"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/password"
	infratoken "github.com/stayforge/hotel-booking-service/internal/hotelbooking/infra/token"
	pkghttp "github.com/stayforge/hotel-booking-service/pkg/http"
	"github.com/stayforge/hotel-booking-service/pkg/worker"
)

type testEnv struct {
	server     *httptest.Server
	tokenCodec apptoken.Codec
	userRepo   *domainmock.UserRepository
	hotelRepo  *domainmock.HotelRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := domainmock.NewUserRepository(ctrl)
	hotelRepo := domainmock.NewHotelRepository(ctrl)

	tokenCodec := infratoken.NewCodec("test-secret", time.Hour)
	passwordEncoder := password.NewBcryptEncoder(bcrypt.MinCost, worker.NewPool(worker.MaxWorkersCountNumCPU))

	authService := service.NewAuth(userRepo, passwordEncoder, tokenCodec)
	profileService := service.NewProfile(userRepo)
	hotelService := service.NewHotel(hotelRepo)

	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithAuth(infrahttp.NewAuthProvider(tokenCodec), infrahttp.BearerTokenProvider),
	)

	srv.Register(infrahttp.NewRegisterHandler(authService))
	srv.Register(infrahttp.NewLoginHandler(authService))
	srv.Register(infrahttp.NewListHotelsHandler(hotelService))
	srv.Register(infrahttp.NewGetHotelHandler(hotelService))
	srv.Register(infrahttp.NewGetProfileHandler(profileService), pkghttp.WithAuthenticationRequirement())
	srv.Register(infrahttp.NewUpdateProfileHandler(profileService), pkghttp.WithAuthenticationRequirement())
	srv.Register(infrahttp.NewCreateHotelHandler(hotelService), pkghttp.WithAuthenticationRequirement())
	srv.Register(infrahttp.NewUpdateHotelHandler(hotelService), pkghttp.WithAuthenticationRequirement())
	srv.Register(infrahttp.NewDeleteHotelHandler(hotelService), pkghttp.WithAuthenticationRequirement())

	testServer := httptest.NewServer(srv)
	t.Cleanup(testServer.Close)

	return testEnv{
		server:     testServer,
		tokenCodec: tokenCodec,
		userRepo:   userRepo,
		hotelRepo:  hotelRepo,
	}
}

func (e testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, e.server.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func (e testEnv) validToken(t *testing.T, userID int64, email string) string {
	t.Helper()
	token, _, err := e.tokenCodec.Issue(userID, email)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestAuthorizationGate(t *testing.T) {
	tests := []struct {
		name          string
		token         func(t *testing.T, env testEnv) string
		expectCode    int
		expectMessage string
	}{
		{
			name:          "missing_authorization_header",
			token:         func(*testing.T, testEnv) string { return "" },
			expectCode:    http.StatusUnauthorized,
			expectMessage: "Missing authorization token",
		},
		{
			name:          "header_without_bearer_prefix",
			token:         func(*testing.T, testEnv) string { return "Token abc" },
			expectCode:    http.StatusUnauthorized,
			expectMessage: "Missing authorization token",
		},
		{
			name:          "malformed_token",
			token:         func(*testing.T, testEnv) string { return "Bearer not-a-token" },
			expectCode:    http.StatusUnauthorized,
			expectMessage: "Invalid token",
		},
		{
			name: "token_signed_with_other_secret",
			token: func(t *testing.T, _ testEnv) string {
				otherCodec := infratoken.NewCodec("other-secret", time.Hour)
				token, _, err := otherCodec.Issue(1, "john@example.com")
				require.NoError(t, err)
				return "Bearer " + token
			},
			expectCode:    http.StatusUnauthorized,
			expectMessage: "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			resp := env.do(t, http.MethodGet, "/auth/profile", tt.token(t, env), nil)

			assert.Equal(t, tt.expectCode, resp.StatusCode)
			assert.Equal(t, tt.expectMessage, decodeMessage(t, resp))
		})
	}
}

func TestAuthorizationGate_ValidTokenReachesHandlerWithIdentity(t *testing.T) {
	env := newTestEnv(t)
	env.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).
		Return(domain.User{ID: 42, Email: "john@example.com", FirstName: "John", LastName: "Doe"}, nil)

	resp := env.do(t, http.MethodGet, "/auth/profile", env.validToken(t, 42, "john@example.com"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestRegisterHandler_Returns(t *testing.T) {
	type registerBody struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	tests := []struct {
		name          string
		body          registerBody
		setup         func(env testEnv)
		expectCode    int
		expectMessage string
	}{
		{
			name:          "invalid_email",
			body:          registerBody{Email: "johnexample.com", Password: "secret"},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid email format",
		},
		{
			name:          "short_password",
			body:          registerBody{Email: "john@example.com", Password: "five5"},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Password must be at least 6 characters",
		},
		{
			name: "duplicate_email",
			body: registerBody{Email: "john@example.com", Password: "secret"},
			setup: func(env testEnv) {
				env.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.User{}, domain.ErrEmailAlreadyTaken)
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			resp := env.do(t, http.MethodPost, "/auth/register", "", tt.body)
			assert.Equal(t, tt.expectCode, resp.StatusCode)
			assert.Equal(t, tt.expectMessage, decodeMessage(t, resp))
		})
	}
}

func TestRegisterHandler_SuccessIssuesValidToken(t *testing.T) {
	env := newTestEnv(t)
	env.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user domain.User) (domain.User, error) {
			user.ID = 7
			return user, nil
		})

	resp := env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":      "john@example.com",
		"password":   "secret",
		"first_name": "John",
		"last_name":  "Doe",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		User struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(7), out.User.ID)

	claims, err := env.tokenCodec.Decode(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.userRepo.EXPECT().FindByEmail(gomock.Any(), "john@example.com").
		Return(domain.User{}, domain.ErrUserNotFound)

	resp := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "john@example.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", decodeMessage(t, resp))
}

func TestHotelHandlers_Returns(t *testing.T) {
	hotel := domain.Hotel{ID: 1, Name: "Grand", Address: "1 Main St", City: "Lisbon", Country: "PT"}

	t.Run("list_is_public", func(t *testing.T) {
		env := newTestEnv(t)
		env.hotelRepo.EXPECT().List(gomock.Any()).Return([]domain.Hotel{hotel}, nil)

		resp := env.do(t, http.MethodGet, "/hotels", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var hotels []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&hotels))
		assert.Len(t, hotels, 1)
	})

	t.Run("get_unknown_id_not_found", func(t *testing.T) {
		env := newTestEnv(t)
		env.hotelRepo.EXPECT().FindByID(gomock.Any(), int64(99)).
			Return(domain.Hotel{}, domain.ErrHotelNotFound)

		resp := env.do(t, http.MethodGet, "/hotels/99", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Hotel not found", decodeMessage(t, resp))
	})

	t.Run("get_non_numeric_id_bad_request", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.do(t, http.MethodGet, "/hotels/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("create_requires_auth", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.do(t, http.MethodPost, "/hotels", "", map[string]string{"name": "Grand"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Missing authorization token", decodeMessage(t, resp))
	})

	t.Run("create_with_auth_created", func(t *testing.T) {
		env := newTestEnv(t)
		env.hotelRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, created domain.Hotel) (domain.Hotel, error) {
				created.ID = 1
				return created, nil
			})

		resp := env.do(t, http.MethodPost, "/hotels", env.validToken(t, 1, "john@example.com"), map[string]string{
			"name":    "Grand",
			"address": "1 Main St",
			"city":    "Lisbon",
			"country": "PT",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("create_with_empty_body_unprocessable", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.do(t, http.MethodPost, "/hotels", env.validToken(t, 1, "john@example.com"), map[string]string{})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Invalid request body", decodeMessage(t, resp))
	})

	t.Run("create_without_country_unprocessable", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.do(t, http.MethodPost, "/hotels", env.validToken(t, 1, "john@example.com"), map[string]string{
			"name":    "Grand",
			"address": "1 Main St",
			"city":    "Lisbon",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Invalid request body", decodeMessage(t, resp))
	})

	t.Run("update_with_malformed_body_unprocessable", func(t *testing.T) {
		env := newTestEnv(t)

		req, err := http.NewRequestWithContext(
			context.Background(),
			http.MethodPut,
			env.server.URL+"/hotels/1",
			bytes.NewReader([]byte("{not json")),
		)
		require.NoError(t, err)
		req.Header.Set("Authorization", env.validToken(t, 1, "john@example.com"))

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("delete_no_content", func(t *testing.T) {
		env := newTestEnv(t)
		env.hotelRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		resp := env.do(t, http.MethodDelete, "/hotels/1", env.validToken(t, 1, "john@example.com"), nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
	})

	t.Run("delete_unknown_id_not_found", func(t *testing.T) {
		env := newTestEnv(t)
		env.hotelRepo.EXPECT().Delete(gomock.Any(), int64(99)).Return(domain.ErrHotelNotFound)

		resp := env.do(t, http.MethodDelete, "/hotels/99", env.validToken(t, 1, "john@example.com"), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Hotel not found", decodeMessage(t, resp))
	})
}

func TestUpdateProfileHandler_PartialBody(t *testing.T) {
	env := newTestEnv(t)
	env.userRepo.EXPECT().Update(gomock.Any(), int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, changes domain.ProfileChanges) (domain.User, error) {
			assert.True(t, changes.FirstName.Present)
			assert.False(t, changes.LastName.Present)

			return domain.User{ID: 42, Email: "john@example.com", FirstName: changes.FirstName.Value, LastName: "Doe"}, nil
		})

	resp := env.do(t, http.MethodPut, "/auth/profile", env.validToken(t, 42, "john@example.com"), map[string]string{
		"first_name": "Jane",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
}

func TestHealthHandlers(t *testing.T) {
	newHealthServer := func(t *testing.T, pingers ...service.Pinger) *httptest.Server {
		t.Helper()
		srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
		srv.Register(infrahttp.NewHealthLiveHandler())
		srv.Register(infrahttp.NewHealthReadyHandler(service.NewHealth(pingers...)))

		testServer := httptest.NewServer(srv)
		t.Cleanup(testServer.Close)
		return testServer
	}

	t.Run("live_always_ok", func(t *testing.T) {
		server := newHealthServer(t)
		resp, err := http.Get(server.URL + "/health/live")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("ready_unavailable_dependency", func(t *testing.T) {
		server := newHealthServer(t,
			okPinger{name: "postgres"},
			failingPinger{name: "redis"},
		)
		resp, err := http.Get(server.URL + "/health/ready")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body struct {
			Status   string `json:"status"`
			Services []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"services"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "unavailable", body.Status)
		require.Len(t, body.Services, 2)
		assert.Equal(t, "postgres", body.Services[0].Name)
		assert.Equal(t, "ok", body.Services[0].Status)
		assert.Equal(t, "redis", body.Services[1].Name)
		assert.Equal(t, "unavailable", body.Services[1].Status)
	})
}

type okPinger struct{ name string }

func (p okPinger) Name() string               { return p.name }
func (p okPinger) Ping(context.Context) error { return nil }

type failingPinger struct{ name string }

func (p failingPinger) Name() string               { return p.name }
func (p failingPinger) Ping(context.Context) error { return fmt.Errorf("connection refused") }
