// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNonce(t *testing.T) {
	t.Parallel()
	assert, require := assert.New(t), require.New(t)
	n1, err := NewNonce()
	require.NoError(err)
	n2, err := NewNonce()
	require.NoError(err)
	assert.NotEqual(n1, n2)

	for _, n := range []string{n1, n2} {
		id, err := uuid.Parse(n)
		require.NoError(err)
		assert.Equal(uuid.Version(4), id.Version())
		assert.Len(n, 36)
	}
}
