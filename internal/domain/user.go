package domain

import (
	"net/mail"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Default profile values applied when signup omits the optional fields.
const (
	DefaultUserName   = "Jacques Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User represents a registered user of the photo-sharing app.
// It contains profile information and authentication details.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash
	Name           string    `json:"name"`
	About          string    `json:"about"`
	AvatarURL      string    `json:"avatar"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given email and already-hashed
// password. Optional profile fields fall back to their defaults when empty.
// Returns an error if validation fails.
//
// NOTE: the caller is responsible for hashing the password; the domain
// layer never sees plaintext credentials.
func NewUser(email, hashedPassword, name, about, avatarURL string) (*User, error) {
	if name == "" {
		name = DefaultUserName
	}
	if about == "" {
		about = DefaultUserAbout
	}
	if avatarURL == "" {
		avatarURL = DefaultUserAvatar
	}

	user := &User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		About:          about,
		AvatarURL:      avatarURL,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns a ValidationError naming the offending field on failure.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrValidation)
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrValidation)
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewValidationError("email", "is not a valid address", ErrValidation)
	}

	if u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty", ErrValidation)
	}

	if err := validateRuneLength("name", u.Name, 2, 30); err != nil {
		return err
	}
	if err := validateRuneLength("about", u.About, 2, 200); err != nil {
		return err
	}

	return validateURL("avatar", u.AvatarURL)
}

// ValidateProfile checks the name and about constraints without requiring
// a full entity. Used by partial profile updates.
func ValidateProfile(name, about string) error {
	if err := validateRuneLength("name", name, 2, 30); err != nil {
		return err
	}
	return validateRuneLength("about", about, 2, 200)
}

// ValidateAvatarURL checks the avatar URL constraint without requiring a
// full entity. Used by partial avatar updates.
func ValidateAvatarURL(avatarURL string) error {
	return validateURL("avatar", avatarURL)
}

// validateRuneLength checks an inclusive rune-count range. Lengths are
// counted in runes, not bytes, so multibyte names are measured fairly.
func validateRuneLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return NewValidationError(field, "is too short", ErrValidation)
	}
	if n > max {
		return NewValidationError(field, "is too long", ErrValidation)
	}
	return nil
}

// validateURL checks that the value parses as an absolute http(s) URL.
func validateURL(field, value string) error {
	parsed, err := url.ParseRequestURI(value)
	if err != nil || parsed.Host == "" {
		return NewValidationError(field, "is not a valid URL", ErrValidation)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return NewValidationError(field, "is not a valid URL", ErrValidation)
	}
	return nil
}
