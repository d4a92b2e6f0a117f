// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

/*
oidc is a package for browser based relying parties using the OIDC implicit
or hybrid flow, where the provider returns tokens in the redirect url's
fragment.

The package is a set of stateless functions. None of them make network
requests, and none of them verify signatures, expiry, audiences or any other
claim of a token.

Primary functions provided by the package

* PrepareAuthentication: creates the url of an authentication request with a
fresh nonce. The caller must store the returned nonce and, after the
redirect, compare it with the nonce claim of the id_token. This package never
makes that comparison.

* IdTokenFromURL, AccessTokenFromURL and ExtractToken: extract a token from a
redirect url's fragment. A url without the token isn't an error.

* PayloadFromIdToken: decodes a JWT's payload without verifying it. A token
which can't be decoded isn't an error.

Only missing required arguments are reported as errors, and every one of
them wraps ErrInvalidParameter.

Examples

* OIDC implicit flow SPA: oidc/examples/spa/
*/
package oidc
