package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"business_manager/internal/i18n"
	"business_manager/internal/middleware"
	"business_manager/internal/model"
	"business_manager/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Scenario(t *testing.T) {
	env := newTestEnv(t)
	env.auth.SignupFunc = func(_ context.Context, req model.SignupRequest) (*model.User, error) {
		return &model.User{ID: 1, Name: req.Name, Email: req.Email, Role: model.RoleUser, PasswordHash: "$2a$10$hash"}, nil
	}

	w := env.do(t, http.MethodPost, "/api/auth/signup", `{"name":"A","email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")
	var summary model.UserSummary
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &summary))
	assert.Equal(t, model.UserSummary{ID: 1, Name: "A", Email: "a@x.com", Role: model.RoleUser}, summary)

	w = env.do(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c
	}
	session := cookies[middleware.AccessTokenCookie]
	require.NotNil(t, session)
	assert.Equal(t, "token-1", session.Value)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), session.MaxAge)

	userCookie := cookies[middleware.UserCookie]
	require.NotNil(t, userCookie)
	assert.False(t, userCookie.HttpOnly)
	raw, err := url.QueryUnescape(userCookie.Value)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), &summary))
	assert.Equal(t, "a@x.com", summary.Email)

	var result model.LoginResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
	assert.Equal(t, "token-1", result.AccessToken)

	w = env.do(t, http.MethodGet, "/api/auth/me", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	var identity model.Identity
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &identity))
	assert.Equal(t, *testIdentity, identity)

	w = env.do(t, http.MethodGet, "/api/auth/logout", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Less(t, c.MaxAge, 0, c.Name)
	}
	assert.Equal(t, []string{"token-1"}, env.auth.logouts)

	w = env.do(t, http.MethodGet, "/api/auth/me", "", session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_SecondLoginSupersedesFirst(t *testing.T) {
	env := newTestEnv(t)
	first := env.login(t)
	second := env.login(t)

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/auth/me", "", first).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/auth/me", "", second).Code)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"malformed body", `{"email":`, nil, http.StatusBadRequest, "Invalid request"},
		{"missing fields", `{"email":""}`, &service.ValidationError{Fields: []string{"email", "password"}}, http.StatusBadRequest, "All fields are required"},
		{"unknown email", `{"email":"b@x.com","password":"x"}`, service.ErrUserNotFound, http.StatusBadRequest, "User not found"},
		{"wrong password", `{"email":"a@x.com","password":"x"}`, service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid password"},
		{"throttled", `{"email":"a@x.com","password":"x"}`, service.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many login attempts, try again later"},
		{"store failure", `{"email":"a@x.com","password":"x"}`, fmt.Errorf("error finding user by email: %w", errors.New("pq: connection reset")), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.auth.LoginFunc = func(context.Context, model.LoginRequest) (*model.LoginResult, error) {
				return nil, tt.err
			}

			w := env.do(t, http.MethodPost, "/api/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, w.Result().Cookies())

			resp := decodeEnvelope(t, w)
			assert.False(t, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.JSONEq(t, `[]`, string(resp.Data))
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestAuthHandler_SignupValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	env.auth.SignupFunc = func(context.Context, model.SignupRequest) (*model.User, error) {
		return nil, &service.ValidationError{Fields: []string{"name", "password"}}
	}

	w := env.do(t, http.MethodPost, "/api/auth/signup", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "All fields are required", resp.Message)
	assert.JSONEq(t, `{"errors":{"name":"Name is required","password":"Password is required"}}`, string(resp.ExtraData))
}

func TestAuthHandler_SignupPasswordTooLong(t *testing.T) {
	env := newTestEnv(t)
	env.auth.SignupFunc = func(context.Context, model.SignupRequest) (*model.User, error) {
		return nil, &service.ValidationError{Fields: []string{"password"}, Reason: i18n.MsgPasswordTooLong}
	}

	w := env.do(t, http.MethodPost, "/api/auth/signup", `{"name":"A","email":"a@x.com","password":"`+strings.Repeat("p", 80)+`"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Password must be at most 72 bytes", resp.Message)
	assert.JSONEq(t, `{"errors":{"password":"Password must be at most 72 bytes"}}`, string(resp.ExtraData))
}

func TestAuthHandler_SignupConflictIsLocalized(t *testing.T) {
	env := newTestEnv(t)
	env.auth.SignupFunc = func(context.Context, model.SignupRequest) (*model.User, error) {
		return nil, service.ErrConflict
	}

	w := env.do(t, http.MethodPost, "/api/auth/signup", `{"name":"A","email":"a@x.com","password":"p"}`,
		&http.Cookie{Name: i18n.CookieName, Value: i18n.Urdu})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, i18n.T(i18n.Urdu, i18n.MsgUserExists), decodeEnvelope(t, w).Message)
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Status)

	w = env.do(t, http.MethodGet, "/api/auth/logout", "", &http.Cookie{Name: middleware.AccessTokenCookie, Value: "garbage"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_AdminUsers(t *testing.T) {
	env := newTestEnv(t)
	env.auth.ListUsersFunc = func(context.Context) ([]model.User, error) {
		return []model.User{{ID: 1, Email: "a@x.com", Role: model.RoleAdmin, PasswordHash: "secret-hash"}}, nil
	}

	session := env.login(t)
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/api/admin/users", "", session).Code)

	env.auth.identity = &model.Identity{ID: 1, Email: "a@x.com", Role: model.RoleAdmin}
	w := env.do(t, http.MethodGet, "/api/admin/users", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-hash")
	assert.JSONEq(t, `{"total":1}`, string(decodeEnvelope(t, w).ExtraData))

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/admin/users", "").Code)
}
