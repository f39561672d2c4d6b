package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameTaken         = errors.New("user with this username already exists")
	ErrAccountDeactivated    = errors.New("account is deactivated")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrQuizNotFound          = errors.New("quiz not found")
	ErrQuizNotAvailable      = errors.New("invalid quiz or quiz not available")
	ErrQuizAlreadyCompleted  = errors.New("quiz already completed")
	ErrDeadlinePassed        = errors.New("quiz deadline has passed")
	ErrAttemptNotFound       = errors.New("quiz attempt not found")
	ErrCategoryInUse         = errors.New("category still has questions assigned")
	ErrPositionInUse         = errors.New("position still has registered users")
	ErrCityExists            = errors.New("city with this name already exists")
	ErrNoCategories          = errors.New("no categories available")
	ErrInsufficientQuestions = errors.New("not enough questions available")
	ErrAnswerCountMismatch   = errors.New("answer count does not match question count")
)
