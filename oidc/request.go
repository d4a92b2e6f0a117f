// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"fmt"
	"net/url"
	"strings"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/hashicorp/go-hclog"
)

// ResponseTypeIdToken is always the first response type requested.
const ResponseTypeIdToken = "id_token"

// AuthConfig represents the parameters of an implicit or hybrid flow
// authentication request.
type AuthConfig struct {
	// IdentityProviderUrl is the provider's authorization endpoint. The
	// request's parameters are appended after a '?', so the endpoint must not
	// carry a query of its own (for example: a policy parameter); such an
	// endpoint results in an invalid url.
	IdentityProviderUrl string

	// ClientId is the relying party id
	ClientId string

	// RedirectUrl is where the provider sends the user after authentication.
	RedirectUrl string

	// ResponseType is an optional space separated list of response types
	// requested in addition to "id_token" (for example: "token").
	ResponseType string

	// Scope is an optional space separated list of scopes requested in
	// addition to "openid".
	Scope string
}

// Validate the config. Missing fields are checked in this order:
// IdentityProviderUrl, ClientId, RedirectUrl.
func (c *AuthConfig) Validate() error {
	const op = "AuthConfig.Validate"
	switch {
	case c == nil:
		return fmt.Errorf("%s: %w", op, ErrMissingOptions)
	case c.IdentityProviderUrl == "":
		return fmt.Errorf("%s: %w", op, ErrMissingIdentityProviderUrl)
	case c.ClientId == "":
		return fmt.Errorf("%s: %w", op, ErrMissingClientId)
	case c.RedirectUrl == "":
		return fmt.Errorf("%s: %w", op, ErrMissingRedirectUrl)
	}
	return nil
}

// Authentication is a prepared authentication request.
type Authentication struct {
	// Url is the authentication request url the user agent should be sent
	// to.
	Url string

	// Nonce was included in Url. It must be stored by the caller and compared
	// with the nonce claim of the id_token returned by the provider. This
	// package never makes that comparison.
	Nonce string
}

// PrepareAuthentication creates the url of an implicit or hybrid flow
// authentication request along with a fresh nonce. No request is sent; the
// caller redirects the user agent to the returned Url.
//
// The url's parameters are always in this order: client_id, redirect_uri,
// scope, response_type, nonce.
//
// Supported options:
//   - WithLogger
//   - WithNonceGenerator
func PrepareAuthentication(c *AuthConfig, opt ...Option) (*Authentication, error) {
	const op = "oidc.PrepareAuthentication"
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	opts := getAuthOpts(opt...)

	responseType := strings.TrimSpace(ResponseTypeIdToken + " " + c.ResponseType)
	scope := strings.TrimSpace(gooidc.ScopeOpenID + " " + c.Scope)

	nonce, err := opts.withNonceGenerator()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var b strings.Builder
	b.WriteString(c.IdentityProviderUrl)
	b.WriteString("?client_id=")
	b.WriteString(encodeComponent(c.ClientId))
	b.WriteString("&redirect_uri=")
	b.WriteString(encodeComponent(c.RedirectUrl))
	b.WriteString("&scope=")
	b.WriteString(encodeComponent(scope))
	b.WriteString("&response_type=")
	b.WriteString(encodeComponent(responseType))
	b.WriteString("&nonce=")
	b.WriteString(encodeComponent(nonce))

	opts.withLogger.Debug("prepared authentication request",
		"identity_provider_url", c.IdentityProviderUrl,
		"client_id", c.ClientId,
		"redirect_url", c.RedirectUrl,
		"scope", scope,
		"response_type", responseType,
	)
	return &Authentication{
		Url:   b.String(),
		Nonce: nonce,
	}, nil
}

// encodeComponent escapes s for use as a query parameter value. Spaces are
// encoded as %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// authOptions is the set of available options for PrepareAuthentication
type authOptions struct {
	withLogger         hclog.Logger
	withNonceGenerator func() (string, error)
}

// authDefaults is a handy way to get the defaults at runtime and during unit
// tests.
func authDefaults() authOptions {
	return authOptions{
		withLogger:         hclog.NewNullLogger(),
		withNonceGenerator: NewNonce,
	}
}

// getAuthOpts gets the defaults and applies the opt overrides passed in.
func getAuthOpts(opt ...Option) authOptions {
	opts := authDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}
