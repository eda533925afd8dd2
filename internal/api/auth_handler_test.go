package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago-api/internal/api"
	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/mocks"
	"github.com/voyago/voyago-api/internal/service/auth"
	"github.com/voyago/voyago-api/internal/store"
)

func newAuthHandler(userStore store.UserStore, jwtService auth.JWTService) *api.AuthHandler {
	hasher := auth.NewBcryptHasher(4)
	return api.NewAuthHandler(userStore, jwtService, hasher, hasher, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignup(t *testing.T) {
	t.Parallel()

	t.Run("creates user and returns token with public profile", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newAuthHandler(userStore, &mocks.MockJWTService{Token: "signed-token"})

		rec := postJSON(t, handler.Signup, "/api/auth/signup", api.SignupRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "correct horse battery",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, "Jane Doe", resp.User.Name)
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.User.ID)

		stored, err := userStore.GetByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.Empty(t, stored.Password)
		assert.NotEqual(t, "correct horse battery", stored.HashedPassword)
	})

	t.Run("never returns password material in the response body", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		rec := postJSON(t, handler.Signup, "/api/auth/signup", api.SignupRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "correct horse battery",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "correct horse battery")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		tests := []api.SignupRequest{
			{Email: "jane@example.com", Password: "correct horse battery"},
			{Name: "Jane", Password: "correct horse battery"},
			{Name: "Jane", Email: "jane@example.com"},
			{Name: "Jane", Email: "not-an-email", Password: "correct horse battery"},
			{Name: "Jane", Email: "jane@example.com", Password: "short"},
		}
		for _, req := range tests {
			rec := postJSON(t, handler.Signup, "/api/auth/signup", req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		req := api.SignupRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "correct horse battery",
		}
		rec := postJSON(t, handler.Signup, "/api/auth/signup", req)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = postJSON(t, handler.Signup, "/api/auth/signup", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already in use")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.Signup(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	seedUser := func(t *testing.T, userStore *mocks.MockUserStore, password string) *domain.User {
		t.Helper()

		hasher := auth.NewBcryptHasher(4)
		hashed, err := hasher.Hash(password)
		require.NoError(t, err)

		user, err := domain.NewUser("Jane Doe", "jane@example.com", password)
		require.NoError(t, err)
		user.HashedPassword = hashed
		user.Password = ""
		require.NoError(t, userStore.Create(context.Background(), user))
		return user
	}

	t.Run("valid credentials return a fresh token", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore, "correct horse battery")
		handler := newAuthHandler(userStore, &mocks.MockJWTService{Token: "fresh-token"})

		rec := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "jane@example.com",
			Password: "correct horse battery",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "fresh-token", resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		seedUser(t, userStore, "correct horse battery")
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		unknownEmail := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct horse battery",
		})
		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong password",
		})

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

		var a, b map[string]interface{}
		require.NoError(t, json.Unmarshal(unknownEmail.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &b))
		assert.Equal(t, a["error"], b["error"])
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, errors.New("connection refused")
		}
		handler := newAuthHandler(userStore, &mocks.MockJWTService{})

		rec := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "jane@example.com",
			Password: "correct horse battery",
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
