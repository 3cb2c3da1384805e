package handler

import "github.com/shopfront/storefront-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User *domain.User `json:"user"`
}

type resetRequestRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type resetRedeemRequest struct {
	Identifier  string `json:"identifier"   validate:"required"`
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// resetResponse is returned by both reset endpoints. Its shape never varies
// with whether an account matched; DebugToken is populated only outside
// production.
type resetResponse struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message,omitempty"`
	DebugToken string `json:"debug_token,omitempty"`
}
