package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/educlima/vasco-app/internal/logging"
	"github.com/educlima/vasco-app/internal/models"
	"github.com/stretchr/testify/assert"
)

type fakeValidator map[string]*models.User

func (f fakeValidator) ValidateToken(token string) (*models.User, error) {
	if u, ok := f[token]; ok {
		return u, nil
	}
	return nil, errors.New("invalid token")
}

func okHandler(t *testing.T, wantUser string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := GetUser(r)
		if wantUser != "" && (u == nil || u.ID != wantUser) {
			t.Errorf("Expected user %s in context, got %+v", wantUser, u)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	auth := NewAuth(fakeValidator{"good": {ID: "1", Email: "joao@vasco.com"}})

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no credentials", func(r *http.Request) {}, http.StatusUnauthorized},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"}) }, http.StatusOK},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK},
		{"bad bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }, http.StatusUnauthorized},
		{"bad cookie good bearer", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "bad"})
			r.Header.Set("Authorization", "Bearer good")
		}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			want := ""
			if tt.status == http.StatusOK {
				want = "1"
			}
			auth.RequireAuth(okHandler(t, want)).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetUser_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUser(req))
}

func TestRecover(t *testing.T) {
	h := Recover(logging.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler(t, "")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestLogger_WritesStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "development", "info")
	h := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/login", nil))

	assert.Contains(t, buf.String(), "path=/api/login")
	assert.Contains(t, buf.String(), "status=418")
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(okHandler(t, ""), mw("a"), mw("b")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b"}, order)
}
