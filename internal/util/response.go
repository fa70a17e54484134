package util

import (
	"devita_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the unified API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse wraps paginated list payloads.
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

var errorStatus = []struct {
	err  error
	code int
}{
	{ErrInvalidInput, http.StatusBadRequest},
	{ErrInvalidViewType, http.StatusBadRequest},
	{ErrInvalidRewardValue, http.StatusBadRequest},
	{ErrInvalidCategoryName, http.StatusBadRequest},
	{ErrInvalidCategoryColor, http.StatusBadRequest},
	{ErrCategoryExists, http.StatusBadRequest},
	{ErrCannotFollowSelf, http.StatusBadRequest},
	{ErrAlreadyFollowing, http.StatusBadRequest},

	{ErrAccessDenied, http.StatusForbidden},
	{ErrTodoAccessDenied, http.StatusForbidden},
	{ErrPostAccessDenied, http.StatusForbidden},
	{ErrCategoryAccessDenied, http.StatusForbidden},
	{ErrMissionCategoryProtected, http.StatusForbidden},
	{ErrDailyRewardLimitExceeded, http.StatusForbidden},
	{ErrInsufficientNutrition, http.StatusForbidden},

	{ErrUserNotFound, http.StatusNotFound},
	{ErrTodoNotFound, http.StatusNotFound},
	{ErrCategoryNotFound, http.StatusNotFound},
	{ErrRewardNotFound, http.StatusNotFound},
	{ErrPostNotFound, http.StatusNotFound},
	{ErrFollowNotFound, http.StatusNotFound},

	{ErrInvalidToken, http.StatusUnauthorized},
	{ErrTokenExpired, http.StatusUnauthorized},
}

// HandleError maps a service error to its HTTP response. Unrecognized
// errors (including ErrCacheUnavailable and ErrAIServer) become 500s and
// get logged with their cause.
func HandleError(c *gin.Context, err error) {
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			Error(c, m.code, m.err.Error())
			return
		}
	}
	LogInternalError(c, err)
}
