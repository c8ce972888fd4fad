package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/park285/leetcode-profile-go/internal/httperror"
	"github.com/park285/leetcode-profile-go/internal/middleware"
)

const msgInvalidBody = "Request body must be a JSON object."

// writeError 는 에러 응답을 작성한다.
func writeError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err, middleware.GetRequestID(c))
	c.JSON(status, payload)
}

// bindJSON 는 요청 본문을 JSON으로 파싱한다. 빈 본문은 허용한다.
func bindJSON(c *gin.Context, out any) bool {
	if c == nil {
		return false
	}
	err := c.ShouldBindJSON(out)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		writeError(c, httperror.NewValidationError(err))
		return false
	}
	writeError(c, httperror.NewInvalidInput(msgInvalidBody))
	return false
}
