package service

import "errors"

// Service-specific errors
var (
	ErrUnsupportedService = errors.New("unsupported issue service")
	ErrInvalidConfig      = errors.New("invalid issue service configuration")
	ErrConnectFailed      = errors.New("failed to connect to issue service")
	ErrInvalidClient      = errors.New("client does not belong to this issue service")
	ErrMissingToken       = errors.New("missing access token")
	ErrInvalidRepo        = errors.New("invalid repository identifier")
	ErrRateLimited        = errors.New("rate limited by issue service API")
	ErrUnauthorized       = errors.New("unauthorized access to issue service API")
)
