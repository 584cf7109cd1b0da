package api

// Common request payloads. Validation tags mirror the store-level field
// constraints so obviously bad payloads fail before touching the store.

// SignupRequest defines the payload for the user registration endpoint.
// The profile fields are optional; the store applies defaults.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name"     validate:"omitempty,min=2,max=30"`
	About    string `json:"about"    validate:"omitempty,min=2,max=200"`
	Avatar   string `json:"avatar"   validate:"omitempty,url"`
}

// SigninRequest defines the payload for the sign-in endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse defines the successful response for the sign-in endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest defines the payload for PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=200"`
}

// UpdateAvatarRequest defines the payload for PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// CreateCardRequest defines the payload for POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}
