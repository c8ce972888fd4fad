package httperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/park285/leetcode-profile-go/internal/profile"
)

// ErrorCode 는 API 오류 코드다.
type ErrorCode string

const (
	// ErrorCodeInternal 는 내부 오류 코드다.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrorCodeValidation 는 검증 오류 코드다.
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrorCodeInvalidInput 는 입력 오류 코드다.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrorCodeNotFound 는 경로 미존재 코드다.
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrorCodeProfileNotFound 는 LeetCode 사용자 미존재 코드다.
	ErrorCodeProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	// ErrorCodeUpstreamUnavailable 는 LeetCode 접속 불가 코드다.
	ErrorCodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	// ErrorCodeUpstreamResponse 는 LeetCode 응답 형식 오류 코드다.
	ErrorCodeUpstreamResponse ErrorCode = "UPSTREAM_RESPONSE_INVALID"
)

// ErrorResponse 는 API 오류 응답 본문이다.
type ErrorResponse struct {
	Message   string         `json:"error"`
	ErrorCode string         `json:"error_code"`
	ErrorType string         `json:"error_type"`
	RequestID *string        `json:"request_id"`
	Details   map[string]any `json:"details,omitempty"`
}

// Error 는 내부 표준 오류 타입이다.
type Error struct {
	Code    ErrorCode
	Status  int
	Type    string
	Message string
	Details map[string]any
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

// Response 는 오류를 HTTP 응답으로 변환한다.
func Response(err error, requestID string) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternalError()
	}

	var requestIDPtr *string
	if requestID != "" {
		requestIDPtr = &requestID
	}

	return apiErr.Status, ErrorResponse{
		Message:   apiErr.Message,
		ErrorCode: string(apiErr.Code),
		ErrorType: apiErr.Type,
		RequestID: requestIDPtr,
		Details:   apiErr.Details,
	}
}

// FromError 는 오류를 내부 오류 타입으로 변환한다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var profileErr *profile.Error
	if errors.As(err, &profileErr) {
		return fromProfileError(profileErr)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationError(err)
	}

	return NewInternalError()
}

func fromProfileError(err *profile.Error) *Error {
	result := &Error{
		Type:    string(err.Kind),
		Message: err.Message,
	}
	switch err.Kind {
	case profile.KindInput:
		result.Code, result.Status = ErrorCodeInvalidInput, http.StatusBadRequest
	case profile.KindProfileNotFound:
		result.Code, result.Status = ErrorCodeProfileNotFound, http.StatusNotFound
	case profile.KindUpstreamUnavailable:
		result.Code, result.Status = ErrorCodeUpstreamUnavailable, http.StatusServiceUnavailable
	default:
		result.Code, result.Status = ErrorCodeUpstreamResponse, http.StatusBadGateway
	}
	return result
}

// NewInternalError 는 내부 오류를 생성한다. 원인은 응답에 포함하지 않는다.
func NewInternalError() *Error {
	return &Error{
		Code:    ErrorCodeInternal,
		Status:  http.StatusInternalServerError,
		Type:    "InternalError",
		Message: "Internal server error",
	}
}

// NewValidationError 는 검증 오류를 생성한다.
func NewValidationError(err error) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Status:  http.StatusUnprocessableEntity,
		Type:    "ValidationError",
		Message: "Input validation failed",
		Details: validationDetails(err),
	}
}

// NewInvalidInput 는 입력 오류를 생성한다.
func NewInvalidInput(message string) *Error {
	return &Error{
		Code:    ErrorCodeInvalidInput,
		Status:  http.StatusBadRequest,
		Type:    "InvalidInputError",
		Message: message,
	}
}

// NewNotFound 는 경로 미존재 오류를 생성한다.
func NewNotFound(method, path string) *Error {
	return &Error{
		Code:    ErrorCodeNotFound,
		Status:  http.StatusNotFound,
		Type:    "NotFoundError",
		Message: fmt.Sprintf("No route for %s %s", method, path),
	}
}

// FieldError 는 필드 오류 상세 정보다.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

func validationDetails(err error) map[string]any {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, validationErr := range validationErrors {
			fields = append(fields, FieldError{
				Field:   validationErr.Field(),
				Message: validationErr.Tag(),
				Value:   validationErr.Value(),
			})
		}
		return map[string]any{"errors": fields}
	}

	return map[string]any{
		"errors": []FieldError{{Field: "body", Message: err.Error()}},
	}
}
