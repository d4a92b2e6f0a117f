// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissing(t *testing.T) {
	t.Parallel()
	missing := []error{
		ErrMissingUrl,
		ErrMissingPattern,
		ErrMissingToken,
		ErrMissingOptions,
		ErrMissingIdentityProviderUrl,
		ErrMissingClientId,
		ErrMissingRedirectUrl,
	}
	for i, e := range missing {
		e := e
		t.Run(e.Error(), func(t *testing.T) {
			assert := assert.New(t)
			assert.True(errors.Is(e, ErrInvalidParameter))
			for j, other := range missing {
				if i == j {
					continue
				}
				assert.Falsef(errors.Is(e, other), "%q must not match %q", e, other)
				assert.NotEqual(e.Error(), other.Error())
			}
		})
	}
}
