package auth

import (
	"context"

	"swifttrack-dashboard/internal/apiclient"
	"swifttrack-dashboard/internal/logger"
	appErrors "swifttrack-dashboard/pkg/errors"
	"swifttrack-dashboard/pkg/utils"

	"go.uber.org/zap"
)

// Messages shown inline on the login form
const (
	MessageInvalidCredentials = "Invalid credentials"
	MessageConnectionFailed   = "Failed to connect to server. Please check your connection."
)

// Authenticator is the login endpoint of the API client.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*apiclient.LoginResult, error)
}

type Service struct {
	api Authenticator
}

func NewService(api Authenticator) *Service {
	return &Service{api: api}
}

// Login makes a single attempt against the API. A rejected login or an
// unreachable API is reported through Result.Message; the returned error
// is only set when the request itself is invalid.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	req.Username = utils.SanitizeUsername(req.Username)

	if err := utils.ValidateStruct(&req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Username and password are required", appErrors.ErrInvalidInput)
	}

	resp, err := s.api.Login(ctx, req.Username, req.Password)
	if err != nil {
		logger.Error("Login request failed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return &Result{Message: MessageConnectionFailed, Err: err}, nil
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = MessageInvalidCredentials
		}
		logger.Info("Login rejected",
			zap.String("username", req.Username),
			zap.String("reason", message),
		)
		return &Result{Message: message}, nil
	}

	logger.Info("User logged in",
		zap.String("user_id", resp.User.UserID),
		zap.String("role", resp.User.Role),
	)
	return &Result{Identity: resp.User}, nil
}
