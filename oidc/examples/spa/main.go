// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/hashicorp/cap-spa/oidc"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// List of required configuration environment variables
const (
	clientID = "OIDC_CLIENT_ID"
	issuer   = "OIDC_ISSUER"
	port     = "OIDC_PORT"
)

// logLevel is an optional configuration environment variable
const logLevel = "OIDC_LOG_LEVEL"

const attemptExp = 2 * time.Minute

func envConfig() (map[string]string, error) {
	const op = "envConfig"
	env := map[string]string{
		clientID: os.Getenv(clientID),
		issuer:   os.Getenv(issuer),
		port:     os.Getenv(port),
	}
	var result *multierror.Error
	for _, k := range []string{clientID, issuer, port} {
		if env[k] == "" {
			result = multierror.Append(result, fmt.Errorf("%s: %s is empty", op, k))
		}
	}
	return env, result.ErrorOrNil()
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "spa",
		Level: hclog.LevelFromString(os.Getenv(logLevel)),
	})

	env, err := envConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// handle ctrl-c while waiting for the callback
	sigintCh := make(chan os.Signal, 1)
	signal.Notify(sigintCh, os.Interrupt)
	defer signal.Stop(sigintCh)

	ctx := gooidc.ClientContext(context.Background(), cleanhttp.DefaultPooledClient())
	p, err := gooidc.NewProvider(ctx, env[issuer]) // makes http req to issuer for discovery
	if err != nil {
		logger.Error("unable to discover provider", "issuer", env[issuer], "error", err)
		os.Exit(1)
	}

	authConfig := oidc.AuthConfig{
		IdentityProviderUrl: p.Endpoint().AuthURL,
		ClientId:            env[clientID],
		RedirectUrl:         fmt.Sprintf("http://localhost:%s/callback", env[port]),
		ResponseType:        "token",
		Scope:               "profile email",
	}
	if err := authConfig.Validate(); err != nil {
		logger.Error("invalid authentication config", "error", err)
		os.Exit(1)
	}
	verifier := p.Verifier(&gooidc.Config{ClientID: env[clientID]})
	nc := newNonceCache(attemptExp)

	http.HandleFunc("/login", LoginHandler(authConfig, nc, logger.Named("login")))
	http.HandleFunc("/callback", CallbackHandler())
	http.HandleFunc("/token", TokenHandler(ctx, verifier, p, nc, logger.Named("token")))

	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%s", env[port]))
	if err != nil {
		logger.Error("unable to listen", "error", err)
		os.Exit(1)
	}
	defer listener.Close()

	srvCh := make(chan error)
	// Start local server
	go func() {
		err := http.Serve(listener, nil)
		if err != nil && err != http.ErrServerClosed {
			srvCh <- err
		}
	}()
	logger.Info("open the login url to authenticate", "url", fmt.Sprintf("http://localhost:%s/login", env[port]))

	select {
	case err := <-srvCh:
		logger.Error("server closed", "error", err)
	case <-sigintCh:
		logger.Info("interrupted")
	}
}
