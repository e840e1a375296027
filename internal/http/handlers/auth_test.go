package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solodev/soloquest/internal/auth"
	"github.com/solodev/soloquest/internal/domain/user"
	"github.com/solodev/soloquest/internal/http/handlers"
	"github.com/solodev/soloquest/internal/http/middlewares"
	"github.com/solodev/soloquest/internal/store"
)

type fakeAuthService struct {
	user user.User
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (store.AuthResponse, error) {
	if email != f.user.Email || password != "right-password" {
		return store.AuthResponse{}, store.ErrInvalidCredentials
	}
	return store.AuthResponse{User: f.user, Token: "issued-token"}, nil
}

func (f *fakeAuthService) GetUserByID(ctx context.Context, id string) (user.User, error) {
	if id != f.user.ID {
		return user.User{}, user.ErrNotFound
	}
	return f.user, nil
}

func authRouter(svc *fakeAuthService, tokens *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handlers.NewAuthHandler(svc)
	authmw := middlewares.NewAuthMiddleware(tokens)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", authmw.RequireAuth(), h.Me)
	return r
}

func TestLoginSuccess(t *testing.T) {
	svc := &fakeAuthService{user: user.User{ID: "u1", Email: "dev@example.com", Role: user.RoleUser}}
	r := authRouter(svc, auth.NewManager("secret", time.Hour))

	body := `{"email":"dev@example.com","password":"right-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		User  user.User `json:"user"`
		Token string    `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token != "issued-token" {
		t.Fatalf("token %q", resp.Token)
	}
	if resp.User.Email != "dev@example.com" {
		t.Fatalf("user %+v", resp.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := &fakeAuthService{user: user.User{ID: "u1", Email: "dev@example.com"}}
	r := authRouter(svc, auth.NewManager("secret", time.Hour))

	body := `{"email":"dev@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != "invalid_credentials" {
		t.Fatalf("code %q", resp.Error.Code)
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	svc := &fakeAuthService{user: user.User{ID: "u1", Email: "dev@example.com"}}
	r := authRouter(svc, auth.NewManager("secret", time.Hour))

	body := `{"email":"not-an-email","password":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

func TestMeRequiresToken(t *testing.T) {
	svc := &fakeAuthService{user: user.User{ID: "u1", Email: "dev@example.com", Role: user.RoleUser}}
	tokens := auth.NewManager("secret", time.Hour)
	r := authRouter(svc, tokens)

	// no Authorization header
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}

	// garbage token
	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}

	// valid token resolves the caller's own record
	token, err := tokens.GenerateToken("u1", "dev@example.com", user.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var got user.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("got user %q", got.ID)
	}
}
