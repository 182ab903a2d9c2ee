package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/jwthelper"
)

const testKey = "middleware-test-key"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", NewAuthenticator(testKey).VerifyJWT(), func(ctx *gin.Context) {
		claims, ok := Claims(ctx)
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, claims)
	})
	return r
}

func signedToken(t *testing.T, key string, ttl time.Duration) string {
	t.Helper()
	token, err := jwthelper.GenerateToken([]byte(key), domain.Claims{UserID: 7, Username: "ana2024"}, ttl)
	require.NoError(t, err)
	return token
}

func TestVerifyJWT(t *testing.T) {
	router := newAuthRouter()

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantCode int
	}{
		{
			name:     "no token",
			setup:    func(r *http.Request) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signedToken(t, testKey, time.Minute)})
			},
			wantCode: http.StatusOK,
		},
		{
			name: "bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signedToken(t, testKey, time.Minute))
			},
			wantCode: http.StatusOK,
		},
		{
			name: "wrong key",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signedToken(t, "other-key", time.Minute))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "stale cookie with valid bearer header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signedToken(t, testKey, -time.Minute)})
				r.Header.Set("Authorization", "Bearer "+signedToken(t, testKey, time.Minute))
			},
			wantCode: http.StatusOK,
		},
		{
			name: "stale cookie without header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"})
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "expired",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signedToken(t, testKey, -time.Minute))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"username":"ana2024"`)
			}
		})
	}
}
