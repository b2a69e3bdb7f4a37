package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"business_manager/internal/middleware"
	"business_manager/internal/model"
	"business_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthService is a session-aware stand-in for service.AuthService:
// Login issues "token-N", AuthCheck honours only the latest live token.
type mockAuthService struct {
	SignupFunc    func(ctx context.Context, req model.SignupRequest) (*model.User, error)
	LoginFunc     func(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error)
	ListUsersFunc func(ctx context.Context) ([]model.User, error)

	identity *model.Identity
	issued   int
	live     string
	logouts  []string
}

func (m *mockAuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	return m.SignupFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	m.issued++
	m.live = "token-" + strconv.Itoa(m.issued)
	return &model.LoginResult{
		User:        model.UserSummary{ID: m.identity.ID, Name: m.identity.Name, Email: m.identity.Email, Role: m.identity.Role},
		AccessToken: m.live,
	}, nil
}

func (m *mockAuthService) Logout(_ context.Context, token string) error {
	m.logouts = append(m.logouts, token)
	if token != "" && token == m.live {
		m.live = ""
	}
	return nil
}

func (m *mockAuthService) AuthCheck(_ context.Context, token string) (*model.Identity, error) {
	if token == "" || token != m.live || m.identity == nil {
		return nil, service.ErrUnauthorized
	}
	return m.identity, nil
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return m.ListUsersFunc(ctx)
}

type mockCustomerService struct {
	ListFunc   func(ctx context.Context, userID int) ([]model.Customer, error)
	CreateFunc func(ctx context.Context, userID int, req model.CustomerRequest) (*model.Customer, error)
	GetFunc    func(ctx context.Context, customerID, userID int, role string) (*model.Customer, error)
	UpdateFunc func(ctx context.Context, customerID, userID int, req model.CustomerRequest) (*model.Customer, error)
	DeleteFunc func(ctx context.Context, customerID, userID int, role string) (*model.Customer, error)
}

func (m *mockCustomerService) List(ctx context.Context, userID int) ([]model.Customer, error) {
	return m.ListFunc(ctx, userID)
}

func (m *mockCustomerService) Create(ctx context.Context, userID int, req model.CustomerRequest) (*model.Customer, error) {
	return m.CreateFunc(ctx, userID, req)
}

func (m *mockCustomerService) Get(ctx context.Context, customerID, userID int, role string) (*model.Customer, error) {
	return m.GetFunc(ctx, customerID, userID, role)
}

func (m *mockCustomerService) Update(ctx context.Context, customerID, userID int, req model.CustomerRequest) (*model.Customer, error) {
	return m.UpdateFunc(ctx, customerID, userID, req)
}

func (m *mockCustomerService) Delete(ctx context.Context, customerID, userID int, role string) (*model.Customer, error) {
	return m.DeleteFunc(ctx, customerID, userID, role)
}

type mockPaymentService struct {
	CreateFunc            func(ctx context.Context, customerID, userID int, req model.CreatePaymentRequest) (*model.Payment, error)
	ListByCustomerFunc    func(ctx context.Context, customerID, userID int, role string) ([]model.Payment, error)
	RecordInstallmentFunc func(ctx context.Context, paymentID, userID int, req model.InstallmentRequest) (*model.Installment, *model.Payment, error)
	ListInstallmentsFunc  func(ctx context.Context, paymentID, userID int, role string) ([]model.Installment, error)
}

func (m *mockPaymentService) Create(ctx context.Context, customerID, userID int, req model.CreatePaymentRequest) (*model.Payment, error) {
	return m.CreateFunc(ctx, customerID, userID, req)
}

func (m *mockPaymentService) ListByCustomer(ctx context.Context, customerID, userID int, role string) ([]model.Payment, error) {
	return m.ListByCustomerFunc(ctx, customerID, userID, role)
}

func (m *mockPaymentService) RecordInstallment(ctx context.Context, paymentID, userID int, req model.InstallmentRequest) (*model.Installment, *model.Payment, error) {
	return m.RecordInstallmentFunc(ctx, paymentID, userID, req)
}

func (m *mockPaymentService) ListInstallments(ctx context.Context, paymentID, userID int, role string) ([]model.Installment, error) {
	return m.ListInstallmentsFunc(ctx, paymentID, userID, role)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

var testIdentity = &model.Identity{ID: 1, Name: "A", Email: "a@x.com", Role: model.RoleUser, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}

type testEnv struct {
	router    *gin.Engine
	auth      *mockAuthService
	customers *mockCustomerService
	payments  *mockPaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		auth:      &mockAuthService{identity: testIdentity},
		customers: &mockCustomerService{},
		payments:  &mockPaymentService{},
	}
	env.router = NewRouter(RouterDeps{
		Auth:        env.auth,
		Customers:   env.customers,
		Payments:    env.payments,
		DB:          fakePinger{},
		Logger:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Cookies:     CookieOptions{MaxAge: time.Hour},
		CORSOrigins: []string{"http://localhost:3000"},
		Gate:        middleware.DefaultGateConfig(),
	})
	return env
}

// login runs a real login through the router and returns the session cookie
func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`)
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AccessTokenCookie {
			return c
		}
	}
	t.Fatalf("login did not set %s", middleware.AccessTokenCookie)
	return nil
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors response.Envelope with raw data for per-test decoding
type envelope struct {
	Status    bool            `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	ExtraData json.RawMessage `json:"extraData"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}
