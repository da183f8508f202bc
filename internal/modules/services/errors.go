package services

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrWrongVendorType  = errors.New("wrong vendor type for this form")
	ErrNoVendorProfile  = errors.New("no vendor profile")
	ErrNotFound         = errors.New("service not found")
	ErrForbidden        = errors.New("forbidden")
	ErrDuplicateService = errors.New("duplicate service name")
)
