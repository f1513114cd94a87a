package transport

// SignInRequest carries the admin login credentials.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// AuthResponse returns the short-lived access token. The refresh token
// travels only in an HTTP-only cookie.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// ProfileResponse describes the signed-in admin.
type ProfileResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	CreatedAt   string  `json:"createdAt"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
}
