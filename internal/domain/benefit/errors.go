package benefit

import "errors"

var (
	ErrBenefitNotFound = errors.New("benefit not found")
	ErrUnknownPlan     = errors.New("unknown benefit plan")
)
