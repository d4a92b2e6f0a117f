// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"net/http"

	"github.com/hashicorp/cap-spa/oidc"
	"github.com/hashicorp/go-hclog"
)

const sessionCookie = "spa_session"

func LoginHandler(authConfig oidc.AuthConfig, nc *nonceCache, l hclog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authn, err := oidc.PrepareAuthentication(&authConfig, oidc.WithLogger(l))
		if err != nil {
			l.Error("error preparing authentication", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		sessionID, err := nc.Add(authn.Nonce)
		if err != nil {
			l.Error("error storing nonce", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(nc.exp.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, authn.Url, http.StatusFound)
	}
}
