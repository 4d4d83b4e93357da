package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSelfManagement   = errors.New("employee cannot be their own manager")
	ErrInvalidGender    = errors.New("gender must be M, F or X")
)
