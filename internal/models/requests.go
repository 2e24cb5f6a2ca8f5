package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProductCreateRequest carries the non-file fields of the product upload form.
type ProductCreateRequest struct {
	Name     string  `validate:"required"`
	Details  string  `validate:"required"`
	Category string  `validate:"required"`
	Price    float64 `validate:"required,gt=0"`
}

func (r *ProductCreateRequest) Validate() error {
	return wrapValidation(validate.Struct(r))
}

// ReviewCreateRequest carries the review submission form.
type ReviewCreateRequest struct {
	Username string `validate:"required"`
	Content  string `validate:"required"`
}

func (r *ReviewCreateRequest) Validate() error {
	return wrapValidation(validate.Struct(r))
}

// BlogCreateRequest carries the blog editor form.
type BlogCreateRequest struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

func (r *BlogCreateRequest) Validate() error {
	return wrapValidation(validate.Struct(r))
}

// LoginRequest carries the login form.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return wrapValidation(validate.Struct(r))
}

// wrapValidation folds validator errors into ErrInvalidInput so callers can
// match with errors.Is without importing the validator package.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	if fields, ok := err.(validator.ValidationErrors); ok {
		return fmt.Errorf("%w: %s", ErrInvalidInput, fields.Error())
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
