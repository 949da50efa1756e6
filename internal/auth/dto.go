package auth

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest is the payload for credential checks.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the public shape of an account; the password hash never
// leaves the service.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult bundles the minted token with its subject.
type AuthResult struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
