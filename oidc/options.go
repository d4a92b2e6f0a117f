// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import "github.com/hashicorp/go-hclog"

// Option defines a common functional options type which can be used in a
// variadic parameter pattern.
type Option func(interface{})

// ApplyOpts takes a pointer to the options struct as a set of default options
// and applies the slice of opts as overrides.
func ApplyOpts(opts interface{}, opt ...Option) {
	for _, o := range opt {
		if o == nil { // ignore any nil Options
			continue
		}
		o(opts)
	}
}

// WithLogger provides an optional logger for: PrepareAuthentication
func WithLogger(l hclog.Logger) Option {
	return func(o interface{}) {
		switch v := o.(type) {
		case *authOptions:
			if l != nil {
				v.withLogger = l
			}
		}
	}
}

// WithNonceGenerator provides an optional nonce generator for:
// PrepareAuthentication. The generator must return values that are unique
// with overwhelming probability; NewNonce is used when none is provided.
func WithNonceGenerator(fn func() (string, error)) Option {
	return func(o interface{}) {
		switch v := o.(type) {
		case *authOptions:
			if fn != nil {
				v.withNonceGenerator = fn
			}
		}
	}
}
