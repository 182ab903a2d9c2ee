package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/request"
	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/api/middleware"
	"github.com/sit-project/sit-api/internal/config"
	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/service"
)

const refreshTokenCookie = "refresh_token"

var errMissingRefreshToken = errors.New("refresh token required")

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, identifier, password string) (domain.Session, error)
	Refresh(ctx context.Context, token string) (domain.Session, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type AuthHandler struct {
	conf *config.AuthConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.AuthConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Register a user and their person record
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /register [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderErr(ctx, "user", "", fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login with email or username
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      429      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	session, err := h.svc.Login(ctx.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		renderErr(ctx, "user", "", fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err))

		return
	}

	h.setSessionCookies(ctx, session)
	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:  session.AccessToken,
		Claims: session.Claims,
	})
}

// HandleRefresh godoc
// @Summary      Rotate the refresh token and issue a new access token
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Router       /session/refresh-token [post]
func (h *AuthHandler) HandleRefresh(ctx *gin.Context) {
	token, err := ctx.Cookie(refreshTokenCookie)
	if err != nil || token == "" {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingRefreshToken))
		return
	}

	session, err := h.svc.Refresh(ctx.Request.Context(), token)
	if err != nil {
		renderErr(ctx, "session", "", fmt.Errorf("v1.HandleRefresh -> h.svc.Refresh -> %w", err))
		return
	}

	h.setSessionCookies(ctx, session)
	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:  session.AccessToken,
		Claims: session.Claims,
	})
}

// HandleLogout godoc
// @Summary      Delete the stored refresh token and clear the cookies
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.MessageResponse
// @Router       /session/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	token, _ := ctx.Cookie(refreshTokenCookie)
	if err := h.svc.Logout(ctx.Request.Context(), token); err != nil {
		renderErr(ctx, "session", "", fmt.Errorf("v1.HandleLogout -> h.svc.Logout -> %w", err))
		return
	}

	h.clearSessionCookies(ctx)
	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// HandleSendResetEmail godoc
// @Summary      Mail a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SendEmailRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      404      {object}   response.Err
// @Router       /send-email [post]
func (h *AuthHandler) HandleSendResetEmail(ctx *gin.Context) {
	var req request.SendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.RequestPasswordReset(ctx.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "email", req.Email))
			return
		}
		renderErr(ctx, "user", req.Email, fmt.Errorf("v1.HandleSendResetEmail -> h.svc.RequestPasswordReset -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "password reset email sent"})
}

// HandleResetPassword godoc
// @Summary      Set a new password with a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token     path      string                        true "reset token"
// @Param        request   body      request.ResetPasswordRequest  true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Router       /reset/{token} [post]
func (h *AuthHandler) HandleResetPassword(ctx *gin.Context) {
	var req request.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.ResetPassword(ctx.Request.Context(), ctx.Param("token"), req.Password); err != nil {
		renderErr(ctx, "reset token", "", fmt.Errorf("v1.HandleResetPassword -> h.svc.ResetPassword -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}

func (h *AuthHandler) setSessionCookies(ctx *gin.Context, s domain.Session) {
	ctx.SetSameSite(sameSite(h.conf.CookieSameSite))
	ctx.SetCookie(middleware.AccessTokenCookie, s.AccessToken, int(h.conf.AccessTokenTTL.Seconds()), "/", "", h.conf.CookieSecure, true)
	ctx.SetCookie(refreshTokenCookie, s.RefreshToken, int(h.conf.RefreshTokenTTL.Seconds()), h.conf.RefreshCookiePath, "", h.conf.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookies(ctx *gin.Context) {
	ctx.SetSameSite(sameSite(h.conf.CookieSameSite))
	ctx.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.conf.CookieSecure, true)
	ctx.SetCookie(refreshTokenCookie, "", -1, h.conf.RefreshCookiePath, "", h.conf.CookieSecure, true)
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

var _ AuthService = (*service.AuthService)(nil)
