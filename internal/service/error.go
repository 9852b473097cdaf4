package service

import "errors"

var (
	ErrInvalidAmount     = errors.New("INVALID_AMOUNT")
	ErrInsufficientFunds = errors.New("INSUFFICIENT_BALANCE")
	ErrInsufficientStock = errors.New("INSUFFICIENT_STOCK")
	ErrAccessDenied      = errors.New("ACCESS_DENIED")
	ErrWindowExpired     = errors.New("WINDOW_EXPIRED")
	ErrOfferArchived     = errors.New("OFFER_ARCHIVED")
	ErrInconsistency     = errors.New("DELTA_MISMATCH")
	ErrCompanyInactive   = errors.New("COMPANY_NOT_ACTIVE")
	ErrAlreadyActive     = errors.New("ALREADY_ACTIVE")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
