package response

import (
	stdErrors "errors"
	"net/http"
	"runtime"

	"videorental/domain/shared"
	"videorental/pkg/errors"
	"videorental/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Duplicates and illegal transitions surface as 400, matching the rest
// of the command-validation failures.
var httpStatusMap = map[errors.ErrorCode]int{
	errors.CodeInternal:     http.StatusInternalServerError,
	errors.CodeBadRequest:   http.StatusBadRequest,
	errors.CodeNotFound:     http.StatusNotFound,
	errors.CodeValidation:   http.StatusBadRequest,
	errors.CodeDuplicate:    http.StatusBadRequest,
	errors.CodeIllegalState: http.StatusBadRequest,
}

func mapErrorCodeToHTTPStatus(code errors.ErrorCode) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func GetRequestID(c *gin.Context) string {
	return getRequestID(c)
}

func captureStack(skip int) []string {
	var pcs [16]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, frame.Function)
		}
		if !more {
			break
		}
	}
	return stack
}

// HandleError handles framework-level failures such as request binding.
func HandleError(c *gin.Context, err error, message string, code int) {
	requestID := getRequestID(c)

	logger.Error(message,
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.Error(err))

	c.JSON(code, &ErrorResponse{
		Success:   false,
		Error:     string(errors.CodeBadRequest),
		Message:   message,
		Code:      code,
		RequestID: requestID,
	})
}

// HandleAppError maps application and domain errors to HTTP statuses.
// The full error chain and stack go to the log; the client only sees
// the code and a user-visible message.
func HandleAppError(c *gin.Context, err error) {
	requestID := getRequestID(c)
	appErr := errors.FromDomainError(err)
	httpStatus := mapErrorCodeToHTTPStatus(appErr.Code)
	stack := extractStack(err)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", httpStatus),
		zap.Strings("stack", stack),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}

	logger.Error(appErr.Message, fields...)

	userMessage := appErr.Message
	if appErr.Code == errors.CodeInternal {
		userMessage = "internal server error"
	}

	c.JSON(httpStatus, &ErrorResponse{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   userMessage,
		Code:      httpStatus,
		RequestID: requestID,
	})
}

// HandleNotFoundAsBadRequest downgrades a not-found to a validation
// failure. Creation-time referential checks and the return transition
// report missing aggregates as 400; everything else keeps 404.
func HandleNotFoundAsBadRequest(c *gin.Context, err error) {
	if stdErrors.Is(err, shared.ErrNotFound) {
		HandleAppError(c, errors.Wrap(err, errors.CodeValidation, err.Error()))
		return
	}
	HandleAppError(c, err)
}

// extractStack prefers the stack recorded where the error was created;
// it falls back to the handling site.
func extractStack(err error) []string {
	var stacker shared.Stacker
	if stdErrors.As(err, &stacker) {
		if stack := stacker.Stack(); len(stack) > 0 {
			return stack
		}
	}
	return captureStack(4)
}
