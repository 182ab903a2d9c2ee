package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/jwthelper"
)

const (
	AccessTokenCookie = "access_token"
	claimsKey         = "claims"
)

var errMissingToken = errors.New("access token required")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT accepts the token from the access_token cookie or an
// Authorization: Bearer header and stores its claims on the context. A
// cookie that does not parse falls through to the header.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokens := tokensFromRequest(ctx)
		if len(tokens) == 0 {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		var (
			claims domain.Claims
			err    error
		)
		for _, token := range tokens {
			if claims, err = jwthelper.ParseToken(a.signingKey, token); err == nil {
				break
			}
		}
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

func tokensFromRequest(ctx *gin.Context) []string {
	var tokens []string
	if cookie, err := ctx.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		tokens = append(tokens, cookie)
	}

	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// Claims returns the identity stored by VerifyJWT.
func Claims(ctx *gin.Context) (domain.Claims, bool) {
	v, ok := ctx.Get(claimsKey)
	if !ok {
		return domain.Claims{}, false
	}
	claims, ok := v.(domain.Claims)
	return claims, ok
}
