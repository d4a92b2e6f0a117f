// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package oidc

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// IdToken is an oidc id_token
type IdToken string

// RedactedIdToken is the redacted string or json for an oidc id_token
const RedactedIdToken = "[REDACTED: id_token]"

// String will redact the token
func (t IdToken) String() string {
	return RedactedIdToken
}

// MarshalJSON will redact the token
func (t IdToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(RedactedIdToken)
}

// Payload returns the decoded, unverified payload of the id_token. See
// PayloadFromIdToken.
func (t IdToken) Payload() (Payload, bool, error) {
	return PayloadFromIdToken(string(t))
}

// Claims decodes the unverified id_token payload into claims, which must be
// a non-nil pointer. It returns false when the payload could not be decoded,
// following the same rules as PayloadFromIdToken. The signature is not
// checked.
func (t IdToken) Claims(claims interface{}) (bool, error) {
	const op = "IdToken.Claims"
	if len(t) == 0 {
		return false, fmt.Errorf("%s: %w", op, ErrMissingToken)
	}
	if claims == nil {
		return false, fmt.Errorf("%s: claims interface is nil: %w", op, ErrInvalidParameter)
	}
	if rv := reflect.ValueOf(claims); rv.Kind() != reflect.Ptr || rv.IsNil() {
		return false, fmt.Errorf("%s: claims must be a non-nil pointer, got %T: %w", op, claims, ErrInvalidParameter)
	}
	raw, ok := payloadBytes(string(t))
	if !ok {
		return false, nil
	}
	// the payload must be a JSON object, whatever claims points to
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil || p == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, claims); err != nil {
		return false, nil
	}
	return true, nil
}
