// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-uuid"
)

var errNonceNotFound = errors.New("nonce not found")

type cachedNonce struct {
	nonce      string
	expiration time.Time
}

// nonceCache holds the nonce of every pending authentication attempt, keyed
// by a session id stored in the user agent's cookie.
type nonceCache struct {
	m   sync.Mutex
	c   map[string]cachedNonce
	exp time.Duration
	now func() time.Time
}

func newNonceCache(exp time.Duration) *nonceCache {
	return &nonceCache{
		c:   map[string]cachedNonce{},
		exp: exp,
		now: time.Now,
	}
}

// Add stores the nonce under a new session id and drops expired entries.
func (nc *nonceCache) Add(nonce string) (string, error) {
	const op = "nonceCache.Add"
	sessionID, err := uuid.GenerateUUID()
	if err != nil {
		return "", fmt.Errorf("%s: unable to generate session id: %w", op, err)
	}
	nc.m.Lock()
	defer nc.m.Unlock()
	now := nc.now()
	// abandoned attempts are only ever removed here
	for id, n := range nc.c {
		if n.expiration.Before(now) {
			delete(nc.c, id)
		}
	}
	nc.c[sessionID] = cachedNonce{
		nonce:      nonce,
		expiration: now.Add(nc.exp),
	}
	return sessionID, nil
}

// Take returns the session's nonce and removes it, so every nonce is
// accepted at most once.
func (nc *nonceCache) Take(sessionID string) (string, error) {
	const op = "nonceCache.Take"
	nc.m.Lock()
	defer nc.m.Unlock()
	n, ok := nc.c[sessionID]
	if !ok {
		return "", fmt.Errorf("%s: session %s: %w", op, sessionID, errNonceNotFound)
	}
	delete(nc.c, sessionID)
	if n.expiration.Before(nc.now()) {
		return "", fmt.Errorf("%s: session %s expired: %w", op, sessionID, errNonceNotFound)
	}
	return n.nonce, nil
}

// Len returns the number of pending authentication attempts.
func (nc *nonceCache) Len() int {
	nc.m.Lock()
	defer nc.m.Unlock()
	return len(nc.c)
}
