package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet("user_id")})
	})
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthAcceptsAccessToken(t *testing.T) {
	access, _, err := GenerateTokenPair(42, "alice", "a@x.com", "STUDENT")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	w := get(protectedRouter(RequireAuth()), access)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthRejectsRefreshToken(t *testing.T) {
	_, refresh, err := GenerateTokenPair(42, "alice", "a@x.com", "STUDENT")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	w := get(protectedRouter(RequireAuth()), refresh)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh token must not authenticate, got %d", w.Code)
	}
}

func TestRequireAuthRejectsMissingOrMangledHeader(t *testing.T) {
	r := protectedRouter(RequireAuth())

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", w.Code)
	}
	if w := get(r, "not.a.token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("mangled token: expected 401, got %d", w.Code)
	}
}

func TestParseRefresh(t *testing.T) {
	access, refresh, err := GenerateTokenPair(7, "bob", "b@x.com", "TEACHER")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	id, err := ParseRefresh(refresh)
	if err != nil || id != 7 {
		t.Fatalf("parse refresh: id=%d err=%v", id, err)
	}
	if _, err := ParseRefresh(access); err == nil {
		t.Fatalf("access token must not pass as refresh")
	}
	if _, err := ParseRefresh("garbage"); err == nil {
		t.Fatalf("garbage must not parse")
	}
}

func TestRequireAuthWithRole(t *testing.T) {
	access, _, err := GenerateTokenPair(1, "root", "root@x.com", "ADMIN")
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if w := get(protectedRouter(RequireAuthWithRole("ADMIN")), access); w.Code != http.StatusOK {
		t.Fatalf("admin token on admin route: expected 200, got %d", w.Code)
	}
	if w := get(protectedRouter(RequireAuthWithRole("TEACHER")), access); w.Code != http.StatusForbidden {
		t.Fatalf("admin token on teacher route: expected 403, got %d", w.Code)
	}
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		_, authed := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous caller must pass, got %d", w.Code)
	}
}
