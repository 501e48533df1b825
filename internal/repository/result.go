package repository

import "github.com/thenoetrevino/todo/internal/models"

// Status tags a Result
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a tagged variant: Loading, Success(Items) or Error(Err)
type Result struct {
	Status Status
	Items  []models.TodoItem
	Err    error
}

// Loading is the state before the first value arrives
func Loading() Result {
	return Result{Status: StatusLoading}
}

// Success wraps a list of items
func Success(items []models.TodoItem) Result {
	if items == nil {
		items = []models.TodoItem{}
	}
	return Result{Status: StatusSuccess, Items: items}
}

// Failure wraps the cause of a failed read
func Failure(err error) Result {
	return Result{Status: StatusError, Err: err}
}

func (r Result) IsLoading() bool { return r.Status == StatusLoading }
func (r Result) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Result) IsError() bool   { return r.Status == StatusError }
