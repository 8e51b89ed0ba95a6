package domain

// APIResult is either a SuccessResult or an ErrorResult.
type APIResult interface {
	OK() bool
}

// SuccessResult holds the data of a successful call.
type SuccessResult struct {
	Data string
}

func (SuccessResult) OK() bool { return true }

// ErrorResult holds the message of a failed call.
type ErrorResult struct {
	Error string
}

func (ErrorResult) OK() bool { return false }
