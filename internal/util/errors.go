package util

import "errors"

// Sentinel errors shared across services and controllers. Controllers map
// them to HTTP status codes in HandleError; services compare with errors.Is.
var (
	// validation (400)
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidViewType      = errors.New("invalid calendar view type")
	ErrInvalidRewardValue   = errors.New("reward amount must not be negative")
	ErrInvalidCategoryName  = errors.New("category name must not be blank")
	ErrInvalidCategoryColor = errors.New("category color must not be blank")
	ErrCategoryExists       = errors.New("category name already exists")
	ErrCannotFollowSelf     = errors.New("cannot follow yourself")
	ErrAlreadyFollowing     = errors.New("already following this user")

	// forbidden (403)
	ErrAccessDenied             = errors.New("access denied")
	ErrTodoAccessDenied         = errors.New("no permission for this todo")
	ErrPostAccessDenied         = errors.New("no permission for this post")
	ErrCategoryAccessDenied     = errors.New("no permission for this category")
	ErrMissionCategoryProtected = errors.New("mission categories cannot be modified")
	ErrDailyRewardLimitExceeded = errors.New("daily reward limit exceeded")
	ErrInsufficientNutrition    = errors.New("not enough nutrition")

	// not found (404)
	ErrUserNotFound     = errors.New("user not found")
	ErrTodoNotFound     = errors.New("todo not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrRewardNotFound   = errors.New("reward not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrFollowNotFound   = errors.New("follow relation not found")

	// auth (401)
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// infrastructure (500)
	ErrCacheUnavailable = errors.New("cache unavailable")
	ErrAIServer         = errors.New("ai server request failed")
)
