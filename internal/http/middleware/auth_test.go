package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", MustAuth(secret), func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "role": id.Role})
	})
	r.GET("/admin", MustAuth(secret), RequireRoles("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestMustAuth_ValidToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := SignToken(secret, 5, "user", time.Hour)
	if err != nil {
		t.Fatalf("sign token error: %v", err)
	}

	r := newAuthRouter(secret)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
}

func TestMustAuth_MissingHeader(t *testing.T) {
	r := newAuthRouter([]byte("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMustAuth_WrongSecret(t *testing.T) {
	token, err := SignToken([]byte("other-secret"), 5, "user", time.Hour)
	if err != nil {
		t.Fatalf("sign token error: %v", err)
	}

	r := newAuthRouter([]byte("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMustAuth_ExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := SignToken(secret, 5, "user", -time.Minute)
	if err != nil {
		t.Fatalf("sign token error: %v", err)
	}

	r := newAuthRouter(secret)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	secret := []byte("test-secret")
	r := newAuthRouter(secret)

	adminToken, err := SignToken(secret, 1, "admin", time.Hour)
	if err != nil {
		t.Fatalf("sign token error: %v", err)
	}
	userToken, err := SignToken(secret, 2, "user", time.Hour)
	if err != nil {
		t.Fatalf("sign token error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("user status = %d, want 403", w.Code)
	}
}
