package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nshelest/mesto-api/internal/api/shared"
	"github.com/nshelest/mesto-api/internal/domain"
	"github.com/nshelest/mesto-api/internal/service/auth"
	"github.com/nshelest/mesto-api/internal/store"
)

// tokenCookieName is the cookie the sign-in endpoint sets alongside the
// JSON token body.
const tokenCookieName = "token"

// AuthHandler handles the public authentication endpoints.
type AuthHandler struct {
	userStore      store.UserStore
	tokenService   auth.TokenService
	passwordHasher auth.PasswordHasher
	tokenLifetime  time.Duration
	logger         *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwordHasher auth.PasswordHasher,
	tokenLifetime time.Duration,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:      userStore,
		tokenService:   tokenService,
		passwordHasher: passwordHasher,
		tokenLifetime:  tokenLifetime,
		logger:         logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup.
// Responds 201 with the created user; the password never appears in any
// response and only its bcrypt digest is stored.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid signup data")
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := domain.NewUser(req.Email, hashed, req.Name, req.About, req.Avatar)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			HandleAPIError(w, r, err, "")
			return
		}
		h.logger.Error("failed to create user", "error", err, "user_id", user.ID)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Signin handles POST /signin.
// An unknown email and a wrong password produce the same 401 so the two
// cases cannot be told apart. Success returns the token in the body and as
// an HttpOnly cookie with the token's lifetime.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid email or password")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error("failed to get user by email", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.passwordHasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := h.tokenService.Generate(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		HandleAPIError(w, r, err, "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		MaxAge:   int(h.tokenLifetime.Seconds()),
		HttpOnly: true,
		Path:     "/",
	})

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
