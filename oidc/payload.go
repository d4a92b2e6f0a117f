// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Payload is the decoded payload of a JWT.
type Payload map[string]interface{}

// Nonce returns the payload's "nonce" claim. Comparing it with the nonce
// returned by PrepareAuthentication is the caller's responsibility.
func (p Payload) Nonce() (string, bool) {
	return p.stringClaim("nonce")
}

// Subject returns the payload's "sub" claim.
func (p Payload) Subject() (string, bool) {
	return p.stringClaim("sub")
}

func (p Payload) stringClaim(name string) (string, bool) {
	v, ok := p[name].(string)
	return v, ok
}

// PayloadFromIdToken decodes the payload of a compact serialized JWT without
// verifying its signature, expiry or any other claim.
//
// The bool is false when the token can't be decoded: it doesn't have three
// segments, the payload isn't base64url, isn't UTF-8 or isn't a JSON object.
// Only a missing token is reported as an error.
func PayloadFromIdToken(token string) (Payload, bool, error) {
	const op = "oidc.PayloadFromIdToken"
	if token == "" {
		return nil, false, fmt.Errorf("%s: %w", op, ErrMissingToken)
	}
	raw, ok := payloadBytes(token)
	if !ok {
		return nil, false, nil
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil || p == nil {
		return nil, false, nil
	}
	return p, true, nil
}

// PayloadFromToken is PayloadFromIdToken for tokens of any kind, for
// example a JWT access_token.
func PayloadFromToken(token string) (Payload, bool, error) {
	return PayloadFromIdToken(token)
}

// payloadBytes returns the decoded payload segment of token.
func payloadBytes(token string) ([]byte, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[1] == "" {
		return nil, false
	}
	raw, err := decodeSegment(parts[1])
	if err != nil || !utf8.Valid(raw) {
		return nil, false
	}
	return raw, true
}

// decodeSegment decodes a base64url JWT segment. Padding is optional.
func decodeSegment(seg string) ([]byte, error) {
	seg = strings.NewReplacer("-", "+", "_", "/").Replace(seg)
	seg = strings.TrimRight(seg, "=")
	return base64.RawStdEncoding.DecodeString(seg)
}
