package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"indi-cards/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoRouter() *gin.Engine {
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	echo := func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	}
	r.POST("/echo", echo)
	r.GET("/echo", echo)
	return r
}

func TestSanitizeStripsMarkupEverywhere(t *testing.T) {
	body := `{"bio":"<b>Hi</b> R&D lead","links":[{"label":"<i>Git</i>Hub"}],"n":3}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	rr := httptest.NewRecorder()

	echoRouter().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"bio":"Hi R&D lead","links":[{"label":"GitHub"}],"n":3}`, rr.Body.String())
}

func TestSanitizeStripsEscapedMarkup(t *testing.T) {
	cases := map[string]string{
		"&lt;img src=x onerror=alert(1)&gt;":                      "",
		"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;hi": "hi",
		"Hi &lt;b&gt;there&lt;/b&gt;":                             "Hi there",
		"R&amp;D":                                                 "R&D",
		"Tom & Jerry":                                             "Tom & Jerry",
	}
	for in, want := range cases {
		got := sanitizeValue(map[string]interface{}{"bio": in}).(map[string]interface{})["bio"]
		assert.Equal(t, want, got, in)
		assert.NotContains(t, got, "<", in)
	}
}

func TestSanitizeLeavesEmptyBodyAlone(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	rr := httptest.NewRecorder()

	echoRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"bio":`))
	rr := httptest.NewRecorder()

	echoRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func signed(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "ana@acme.io",
		"exp":   exp.Unix(),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(EmailKey))
	})

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Token abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signed(t, "other", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, "test-secret", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"valid", "Bearer " + signed(t, "test-secret", time.Now().Add(time.Hour)), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, tc.code, rr.Code)
			if tc.code == http.StatusOK {
				assert.Equal(t, "ana@acme.io", rr.Body.String())
			}
		})
	}
}
