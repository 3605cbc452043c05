package rest

import "github.com/nutritrack/cli/domain"

// Wire shapes of the backend responses. Endpoints are inconsistent about
// wrapping, so each call decodes the shape its endpoint actually returns.

type authResponse struct {
	Token domain.Credential   `json:"token"`
	User  *domain.UserProfile `json:"user"`
}

type dataEnvelope struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}

type historyResponse struct {
	Data []domain.FoodLogEntry `json:"data"`
}

type usersResponse struct {
	Data []domain.UserProfile `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type logFoodRequest struct {
	MessageText string `json:"message_text"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type updateStatusRequest struct {
	Status domain.Status `json:"status"`
}

type changeRoleRequest struct {
	Role domain.Role `json:"role"`
}
