package handler

import (
	"errors"
	"net/http"

	"boardhub/internal/action"
	"boardhub/internal/auth"
	"boardhub/internal/logger"
	"boardhub/internal/metrics"
	"boardhub/internal/model"

	"github.com/gin-gonic/gin"
)

const stateCookie = "oauth_state"

type AuthHandler struct {
	sessions        *auth.Sessions
	authService     *action.AuthService
	providers       map[string]*auth.Provider
	enableTestLogin bool
	secureCookies   bool
}

func NewAuthHandler(sessions *auth.Sessions, authService *action.AuthService, providers map[string]*auth.Provider, enableTestLogin, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		sessions:        sessions,
		authService:     authService,
		providers:       providers,
		enableTestLogin: enableTestLogin,
		secureCookies:   secureCookies,
	}
}

// OAuthRedirect sends the browser to the provider's consent screen with a
// fresh CSRF state bound to a short-lived cookie.
func (h *AuthHandler) OAuthRedirect(c *gin.Context) {
	provider, ok := h.providers[c.Param("provider")]
	if !ok {
		respondFailure(c, http.StatusNotFound, "Unknown provider")
		return
	}

	state, err := auth.NewState()
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Failed to start sign-in")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, provider.AuthCodeURL(state))
}

// OAuthCallback exchanges the provider code, upserts the user by email,
// issues the session cookie and redirects per session state.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	provider, ok := h.providers[c.Param("provider")]
	if !ok {
		respondFailure(c, http.StatusNotFound, "Unknown provider")
		return
	}

	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		respondFailure(c, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.secureCookies, true)

	code := c.Query("code")
	if code == "" {
		respondFailure(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	identity, err := provider.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Get().Error().Err(err).Str("provider", provider.Name).Msg("oauth exchange failed")
		respondFailure(c, http.StatusBadGateway, "Sign-in failed")
		return
	}

	user, err := h.authService.SignInOAuth(c.Request.Context(), identity)
	if err != nil {
		logger.Get().Error().Err(err).Str("provider", provider.Name).Msg("oauth sign-in failed")
		respondFailure(c, http.StatusInternalServerError, "Sign-in failed")
		return
	}

	if err := h.issueSession(c, user); err != nil {
		respondFailure(c, http.StatusInternalServerError, "Sign-in failed")
		return
	}

	metrics.SignInsTotal.WithLabelValues(provider.Name).Inc()
	h.redirectAfterLogin(c, user)
}

// TestLogin is the credentials path for the seeded test user, only mounted
// when ENABLE_TEST_LOGIN is set.
func (h *AuthHandler) TestLogin(c *gin.Context) {
	if !h.enableTestLogin {
		respondFailure(c, http.StatusNotFound, "Not found")
		return
	}

	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.SignInCredentials(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, action.ErrInvalidCredentials) {
			respondFailure(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Get().Error().Err(err).Msg("credentials sign-in failed")
		respondFailure(c, http.StatusInternalServerError, "Sign-in failed")
		return
	}

	if err := h.issueSession(c, user); err != nil {
		respondFailure(c, http.StatusInternalServerError, "Sign-in failed")
		return
	}

	metrics.SignInsTotal.WithLabelValues("credentials").Inc()
	h.redirectAfterLogin(c, user)
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) issueSession(c *gin.Context, user *model.User) error {
	token, err := h.sessions.GenerateToken(user)
	if err != nil {
		logger.Get().Error().Err(err).Msg("sign session token failed")
		return err
	}
	h.sessions.SetCookie(c, token)
	return nil
}

// redirectAfterLogin derives the landing page from the signed-in user, never
// from a fixed target.
func (h *AuthHandler) redirectAfterLogin(c *gin.Context, user *model.User) {
	if user.Username == nil || *user.Username == "" {
		c.Redirect(http.StatusFound, "/account-setup-required")
		return
	}
	c.Redirect(http.StatusFound, "/u/"+*user.Username+"/boards")
}
