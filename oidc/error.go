// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrIdGeneratorFailed = errors.New("id generation failed")

	// Every missing required argument has its own error. All of them wrap
	// ErrInvalidParameter so callers may check either.

	ErrMissingUrl                 = fmt.Errorf("url is missing: %w", ErrInvalidParameter)
	ErrMissingPattern             = fmt.Errorf("regular expression is missing: %w", ErrInvalidParameter)
	ErrMissingToken               = fmt.Errorf("token is missing: %w", ErrInvalidParameter)
	ErrMissingOptions             = fmt.Errorf("options are missing: %w", ErrInvalidParameter)
	ErrMissingIdentityProviderUrl = fmt.Errorf("identity provider url is missing: %w", ErrInvalidParameter)
	ErrMissingClientId            = fmt.Errorf("client id is missing: %w", ErrInvalidParameter)
	ErrMissingRedirectUrl         = fmt.Errorf("redirect url is missing: %w", ErrInvalidParameter)
)
