// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-design-gallery/models"
)

// Field names accepted by [UserValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldUpdate   = "update"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 6
	// bcrypt ignores input past 72 bytes
	passwordMaxBytes = 72
)

// UserValidator validates registration, login and admin update payloads.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreate:
		return v.validateUserCreate(value, fields...)
	case *models.UserCreate:
		return v.validateUserCreate(*value, fields...)
	case models.UserLogin:
		return v.validateUserLogin(value)
	case *models.UserLogin:
		return v.validateUserLogin(*value)
	case models.UserUpdate:
		return v.validateUserUpdate(value)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserCreate(user models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(strings.TrimSpace(user.Username))
			if n < usernameMinLen || n > usernameMaxLen {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < passwordMinLen || len(user.Password) > passwordMaxBytes {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserLogin(login models.UserLogin) error {
	if strings.TrimSpace(login.Username) == "" || login.Password == "" {
		return ErrEmptyCredentials
	}
	return nil
}

func (v *UserValidator) validateUserUpdate(update models.UserUpdate) error {
	if update.IsApproved == nil && update.IsAdmin == nil {
		return ErrNoFieldsToUpdate
	}
	return nil
}
