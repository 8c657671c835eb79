package freight

import "errors"

var (
	ErrFreightNotFound = errors.New("freight not found")
	ErrInvalidStatus   = errors.New("invalid freight status")
	ErrQueryFailed     = errors.New("freight query failed")
	ErrCodeCollision   = errors.New("human code collision")
	ErrNotOwner        = errors.New("freight does not belong to company")
)
