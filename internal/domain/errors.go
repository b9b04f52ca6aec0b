package domain

import "errors"

var (
	// ErrInvalidSpecification is returned when a required numeric field of a
	// door specification cannot be coerced to a number
	ErrInvalidSpecification = errors.New("invalid door specification")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrMatcherFailure is returned when a distributor matcher fails while
	// evaluating its rules; the whole aggregate call is aborted
	ErrMatcherFailure = errors.New("distributor matcher failed")

	// ErrVisionAPIFailure is returned when the vision model request fails
	ErrVisionAPIFailure = errors.New("vision model request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
