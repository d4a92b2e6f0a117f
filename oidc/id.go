// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"fmt"

	"github.com/google/uuid"
)

// NewNonce generates a random RFC 4122 version 4 UUID suitable for use as an
// oidc nonce. Randomness comes from crypto/rand.
func NewNonce() (string, error) {
	const op = "oidc.NewNonce"
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%s: unable to generate nonce: %w: %s", op, ErrIdGeneratorFailed, err)
	}
	return id.String(), nil
}
