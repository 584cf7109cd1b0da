package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nshelest/mesto-api/internal/api"
	apiMiddleware "github.com/nshelest/mesto-api/internal/api/middleware"
	"github.com/nshelest/mesto-api/internal/api/shared"
	"github.com/nshelest/mesto-api/internal/platform/postgres"
	"github.com/nshelest/mesto-api/internal/service/auth"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Sign-up and sign-in stay outside the auth gate; everything
// else requires a valid bearer token.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	userStore := postgres.NewPostgresUserStore(app.db, app.logger)
	cardStore := postgres.NewPostgresCardStore(app.db, app.logger)

	tokenService, err := auth.NewTokenService(app.config.Auth)
	if err != nil {
		return nil, err
	}
	passwordHasher := auth.NewBcryptHasher()

	tokenLifetime := time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
	authHandler := api.NewAuthHandler(userStore, tokenService, passwordHasher, tokenLifetime, app.logger)
	userHandler := api.NewUserHandler(userStore, app.logger)
	cardHandler := api.NewCardHandler(cardStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(tokenService)

	// Public endpoints: the only ways to obtain a token.
	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/me", userHandler.GetMe)
		r.Get("/users/{userId}", userHandler.GetUserByID)
		r.Patch("/users/me", userHandler.UpdateProfile)
		r.Patch("/users/me/avatar", userHandler.UpdateAvatar)

		r.Get("/cards", cardHandler.ListCards)
		r.Post("/cards", cardHandler.CreateCard)
		r.Delete("/cards/{cardId}", cardHandler.DeleteCard)
		r.Put("/cards/{cardId}/likes", cardHandler.LikeCard)
		r.Delete("/cards/{cardId}/likes", cardHandler.DislikeCard)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	// Anything unmatched gets the fixed not-found envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "resource not found")
	})

	return r, nil
}
