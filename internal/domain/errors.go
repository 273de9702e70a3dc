package domain

import "errors"

var (
	ErrNotFound = errors.New("record not found")
)

// Task errors
var (
	ErrTaskInUse       = errors.New("task is still referenced as a dependency")
	ErrSelfDependency  = errors.New("task cannot depend on itself")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidSize     = errors.New("invalid task size")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrTitleRequired   = errors.New("task title is required")
)

// Comment errors
var (
	ErrAuthorRequired  = errors.New("comment author is required")
	ErrContentRequired = errors.New("comment content is required")
)
