package authhandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/config"
	"aitoolhub-server/services/hub-api/internal/domain/session"
	"aitoolhub-server/services/hub-api/internal/domain/user"
	"aitoolhub-server/services/hub-api/internal/infrastructure/auth"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/dto"
	middleware "aitoolhub-server/services/hub-api/internal/interfaces/httpserver/middlewares"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	users    *user.Service
	sessions *session.Service
	google   *auth.GoogleVerifier
	cfg      *config.Config
	validate *validator.Validate
}

func NewAuthHandler(
	users *user.Service,
	sessions *session.Service,
	google *auth.GoogleVerifier,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		google:   google,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember_me"`
}

type googleLoginRequest struct {
	IDToken  string `json:"id_token" validate:"required"`
	Remember bool   `json:"remember_me"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID              uint            `json:"id"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	ProfilePicture  *string         `json:"profile_picture,omitempty"`
	Bio             *string         `json:"bio,omitempty"`
	IsAdmin         bool            `json:"is_admin"`
	Credits         decimal.Decimal `json:"credits"`
	LifetimeCredits decimal.Decimal `json:"lifetime_credits"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		ProfilePicture:  u.ProfilePicture,
		Bio:             u.Bio,
		IsAdmin:         u.IsAdmin,
		Credits:         u.Credits,
		LifetimeCredits: u.LifetimeCredits,
	}
}

type authResponse struct {
	User         UserResponse `json:"user"`
	SessionToken string       `json:"session_token"`
}

// Register creates an account and opens a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("VALIDATION", err.Error()))
		return
	}

	usr, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, dto.Err("CONFLICT", "email already registered"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "registration failed"))
		return
	}

	h.openSession(c, usr, false)
}

// Login authenticates with email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("VALIDATION", err.Error()))
		return
	}

	usr, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "login failed"))
		return
	}

	h.openSession(c, usr, req.Remember)
}

// GoogleLogin verifies a Google ID token and opens a session, creating or
// linking the account as needed.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.google == nil {
		c.JSON(http.StatusNotImplemented, dto.Err("NOT_CONFIGURED", "Google Sign-In is not configured"))
		return
	}

	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("BAD_REQUEST", "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("VALIDATION", err.Error()))
		return
	}

	identity, err := h.google.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "invalid Google token"))
		return
	}

	usr, err := h.users.AuthenticateGoogle(c.Request.Context(), *identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "login failed"))
		return
	}

	h.openSession(c, usr, req.Remember)
}

// Logout destroys the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.secureCookies(), true)
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "logged out"}))
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	usr, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("UNAUTHORIZED", "authentication required"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(ToUserResponse(usr)))
}

const sessionCookieName = "session_token"

func (h *AuthHandler) openSession(c *gin.Context, usr *user.User, remember bool) {
	sess, err := h.sessions.Create(c.Request.Context(), usr.ID, remember)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Err("INTERNAL", "failed to create session"))
		return
	}

	c.SetCookie(sessionCookieName, sess.Token, int(sess.TTL.Seconds()), "/", "", h.secureCookies(), true)
	c.JSON(http.StatusOK, dto.OK(authResponse{
		User:         ToUserResponse(usr),
		SessionToken: sess.Token,
	}))
}

func (h *AuthHandler) secureCookies() bool {
	return strings.HasPrefix(h.cfg.AppURL, "https://")
}
