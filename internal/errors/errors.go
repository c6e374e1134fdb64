// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoChanges          = errors.New("no changes made")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

// Package errors
var (
	ErrPackageStoreNotFound = errors.New("package store not initialized")
	ErrInvalidQuestions     = errors.New("invalid questions payload")
)
