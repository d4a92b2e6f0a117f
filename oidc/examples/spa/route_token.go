// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/hashicorp/cap-spa/oidc"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// maxRedirectURLSize limits the body of a token request
const maxRedirectURLSize = 16 * 1024

// userInfoProvider is satisfied by *gooidc.Provider
type userInfoProvider interface {
	UserInfo(ctx context.Context, tokenSource oauth2.TokenSource) (*gooidc.UserInfo, error)
}

type tokenResponse struct {
	IdTokenClaims  oidc.Payload           `json:"id_token_claims"`
	UserInfoClaims map[string]interface{} `json:"user_info_claims,omitempty"`
}

// TokenHandler receives the redirect url posted by the callback page. It
// extracts the tokens, compares the id_token's nonce with the session's
// nonce, verifies the id_token and, when an access_token was returned and
// ui isn't nil, requests the user's info.
func TokenHandler(ctx context.Context, v *gooidc.IDTokenVerifier, ui userInfoProvider, nc *nonceCache, l hclog.Logger) http.HandlerFunc {
	const op = "TokenHandler"
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxRedirectURLSize))
		if err != nil {
			l.Error("error reading token request", "op", op, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		redirectedURL := strings.TrimSpace(string(body))
		if redirectedURL == "" {
			http.Error(w, "missing redirect url", http.StatusBadRequest)
			return
		}

		idToken, ok, err := oidc.IdTokenFromURL(redirectedURL)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !ok {
			unauthorized(w, l, fmt.Errorf("%s: no id_token in redirect url", op))
			return
		}
		payload, ok, err := idToken.Payload()
		if err != nil || !ok {
			unauthorized(w, l, fmt.Errorf("%s: id_token payload can't be decoded", op))
			return
		}

		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			unauthorized(w, l, fmt.Errorf("%s: missing session cookie: %w", op, err))
			return
		}
		wantNonce, err := nc.Take(cookie.Value)
		if err != nil {
			unauthorized(w, l, fmt.Errorf("%s: %w", op, err))
			return
		}
		if gotNonce, ok := payload.Nonce(); !ok || gotNonce != wantNonce {
			unauthorized(w, l, fmt.Errorf("%s: id_token nonce doesn't match the session's nonce", op))
			return
		}

		verified, err := v.Verify(ctx, string(idToken))
		if err != nil {
			unauthorized(w, l, fmt.Errorf("%s: unable to verify id_token: %w", op, err))
			return
		}

		resp := tokenResponse{IdTokenClaims: payload}
		accessToken, ok, err := oidc.AccessTokenFromURL(redirectedURL)
		if err == nil && ok {
			if verified.AccessTokenHash != "" {
				if err := verified.VerifyAccessToken(string(accessToken)); err != nil {
					unauthorized(w, l, fmt.Errorf("%s: access_token doesn't match at_hash: %w", op, err))
					return
				}
			}
			if ui != nil {
				tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
					AccessToken: string(accessToken),
					TokenType:   "Bearer",
				})
				info, err := ui.UserInfo(ctx, tokenSource)
				switch {
				case err != nil:
					l.Warn("user info request failed", "op", op, "error", err)
				default:
					if err := info.Claims(&resp.UserInfoClaims); err != nil {
						l.Warn("unable to decode user info claims", "op", op, "error", err)
					}
				}
			}
		}

		l.Info("authenticated", "sub", verified.Subject)
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		if err := enc.Encode(resp); err != nil {
			l.Error("error writing token response", "op", op, "error", err)
		}
	}
}

func unauthorized(w http.ResponseWriter, l hclog.Logger, err error) {
	l.Warn("authentication failed", "error", err)
	http.Error(w, err.Error(), http.StatusUnauthorized)
}
