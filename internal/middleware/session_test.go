package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/datazhang-hub/portfolio/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/admin/test", AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

func adminCookie(expiresAt time.Time) string {
	sessionData := SessionData{
		IsAdmin:   true,
		ExpiresAt: expiresAt,
	}

	data, _ := json.Marshal(sessionData)
	encodedData := base64.URLEncoding.EncodeToString(data)
	signature := createSignature(encodedData)
	return signature + "." + encodedData
}

func TestAdminRequiredWithValidSession(t *testing.T) {
	// Load config for testing
	config.Load()

	router := newAdminRouter()

	req, _ := http.NewRequest("GET", "/admin/test", nil)
	req.AddCookie(&http.Cookie{
		Name:  "session",
		Value: adminCookie(time.Now().Add(1 * time.Hour)),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequiredWithoutSession(t *testing.T) {
	config.Load()

	router := newAdminRouter()

	req, _ := http.NewRequest("GET", "/admin/test", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "admin access required")
}

func TestAdminRequiredWithExpiredSession(t *testing.T) {
	config.Load()

	router := newAdminRouter()

	req, _ := http.NewRequest("GET", "/admin/test", nil)
	req.AddCookie(&http.Cookie{
		Name:  "session",
		Value: adminCookie(time.Now().Add(-1 * time.Hour)),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredWithTamperedCookie(t *testing.T) {
	config.Load()

	router := newAdminRouter()

	// Valid payload signed with the wrong key material
	sessionData := SessionData{
		IsAdmin:   true,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	data, _ := json.Marshal(sessionData)
	encodedData := base64.URLEncoding.EncodeToString(data)

	req, _ := http.NewRequest("GET", "/admin/test", nil)
	req.AddCookie(&http.Cookie{
		Name:  "session",
		Value: "bad-signature." + encodedData,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredWithMalformedCookie(t *testing.T) {
	config.Load()

	router := newAdminRouter()

	req, _ := http.NewRequest("GET", "/admin/test", nil)
	req.AddCookie(&http.Cookie{
		Name:  "session",
		Value: "not-a-session-cookie",
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetAndClearSession(t *testing.T) {
	config.Load()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.POST("/login", func(c *gin.Context) {
		if err := SetSession(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	req, _ := http.NewRequest("POST", "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "session" {
			sessionCookie = c
		}
	}
	if assert.NotNil(t, sessionCookie, "login should set a session cookie") {
		assert.NotEmpty(t, sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)
	}
}
