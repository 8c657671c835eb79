package company

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrFreightNotPermitted = errors.New("company is not permitted to create freights")
)
