package errors

import "pedido/internal/errors"

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ORDER_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// ToErrorInfo converts err into the payload handed back to callers that cannot see Go errors
// (HTTP clients, the completion engine). Unknown errors collapse into ErrInternalError so no
// internal detail leaks.
func ToErrorInfo(err error) *ErrorInfo {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = ErrInternalError
	}

	info := &ErrorInfo{
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
	}
	if details := appErr.Details(); details != "" {
		info.Details = details
	}

	return info
}
