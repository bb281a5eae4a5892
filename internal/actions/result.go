package actions

import "github.com/and161185/dashboard/internal/validate"

type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultValidationFailed
	ResultStorageFailed
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultValidationFailed:
		return "validation_failed"
	case ResultStorageFailed:
		return "storage_failed"
	default:
		return "unknown"
	}
}

// State is the form state shown back to the user.
type State struct {
	Errors  validate.FieldErrors `json:"errors,omitempty"`
	Message string               `json:"message,omitempty"`
}

// Result is the outcome of a mutation. NavigateTo is set only when the caller
// should move to another page.
type Result struct {
	Kind       ResultKind
	NavigateTo string
	State      State
}

func success(navigateTo string) Result {
	return Result{Kind: ResultSuccess, NavigateTo: navigateTo}
}

func validationFailed(errs validate.FieldErrors, message string) Result {
	return Result{Kind: ResultValidationFailed, State: State{Errors: errs, Message: message}}
}

func storageFailed(message string) Result {
	return Result{Kind: ResultStorageFailed, State: State{Message: message}}
}
