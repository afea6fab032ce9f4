package domain

import "errors"

var (
	ErrEmptyNameList  = errors.New("name list is empty")
	ErrInvalidConfig  = errors.New("max reel items must be at least 1")
	ErrSpinInProgress = errors.New("a spin is already in progress")
)
