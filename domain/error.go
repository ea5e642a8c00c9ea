package domain

import "github.com/pkg/errors"

var (
	ErrInvalidData = errors.New("invalid data")
	ErrExpired     = errors.New("expired")
)
