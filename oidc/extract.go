// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"fmt"
	"regexp"
)

var (
	// IdTokenPattern matches an id_token parameter in a redirect url's
	// fragment or query.
	IdTokenPattern = regexp.MustCompile(`(#|&)id_token=([^&]+)`)

	// AccessTokenPattern matches an access_token parameter in a redirect
	// url's fragment or query.
	AccessTokenPattern = regexp.MustCompile(`(#|&)access_token=([^&]+)`)
)

// tokenGroup is the name of the capture group ExtractToken prefers when a
// pattern defines it.
const tokenGroup = "token"

// IdTokenFromURL returns the id_token found in the fragment of a redirect
// url. The bool is false when the url doesn't carry an id_token, which is
// expected for page loads that aren't an authentication response.
func IdTokenFromURL(rawURL string) (IdToken, bool, error) {
	const op = "oidc.IdTokenFromURL"
	if rawURL == "" {
		return "", false, fmt.Errorf("%s: %w", op, ErrMissingUrl)
	}
	tk, ok, err := ExtractToken(rawURL, IdTokenPattern)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return IdToken(tk), ok, nil
}

// AccessTokenFromURL returns the access_token found in the fragment of a
// redirect url. The bool is false when the url doesn't carry an
// access_token.
func AccessTokenFromURL(rawURL string) (AccessToken, bool, error) {
	const op = "oidc.AccessTokenFromURL"
	if rawURL == "" {
		return "", false, fmt.Errorf("%s: %w", op, ErrMissingUrl)
	}
	tk, ok, err := ExtractToken(rawURL, AccessTokenPattern)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return AccessToken(tk), ok, nil
}

// ExtractNamedToken returns the value of the name parameter found after a
// '#' or '&' in rawURL, up to the next '&' or the end of the url.
func ExtractNamedToken(rawURL, name string) (string, bool, error) {
	const op = "oidc.ExtractNamedToken"
	switch {
	case rawURL == "":
		return "", false, fmt.Errorf("%s: %w", op, ErrMissingUrl)
	case name == "":
		return "", false, fmt.Errorf("%s: token name is empty: %w", op, ErrMissingPattern)
	}
	re := regexp.MustCompile(`(#|&)` + regexp.QuoteMeta(name) + `=([^&]+)`)
	return ExtractToken(rawURL, re)
}

// ExtractToken matches pattern against rawURL and returns the captured
// token. The token is the capture group named "token" when the pattern
// defines one, otherwise it's the pattern's last capture group.
//
// A url the pattern doesn't match, or a pattern without capture groups,
// yields ("", false, nil). Only missing arguments are reported as errors.
func ExtractToken(rawURL string, pattern *regexp.Regexp) (string, bool, error) {
	const op = "oidc.ExtractToken"
	switch {
	case rawURL == "":
		return "", false, fmt.Errorf("%s: %w", op, ErrMissingUrl)
	case pattern == nil:
		return "", false, fmt.Errorf("%s: %w", op, ErrMissingPattern)
	}
	if pattern.NumSubexp() == 0 {
		return "", false, nil
	}
	group := pattern.NumSubexp()
	if i := pattern.SubexpIndex(tokenGroup); i > 0 {
		group = i
	}
	m := pattern.FindStringSubmatchIndex(rawURL)
	if m == nil || m[2*group] < 0 {
		return "", false, nil
	}
	tk := rawURL[m[2*group]:m[2*group+1]]
	if tk == "" {
		return "", false, nil
	}
	return tk, true, nil
}
