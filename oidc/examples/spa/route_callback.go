// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"net/http"
)

// callbackPage sends the full redirect url, fragment included, to /token.
// The fragment never reaches the server otherwise.
const callbackPage = `<!DOCTYPE html>
<html>
<head><title>callback</title></head>
<body>
<pre id="result">authenticating...</pre>
<script>
fetch("/token", {
  method: "POST",
  credentials: "same-origin",
  headers: {"Content-Type": "text/plain"},
  body: window.location.href
})
  .then(function (res) { return res.text(); })
  .then(function (text) {
    history.replaceState(null, "", window.location.pathname);
    document.getElementById("result").textContent = text;
  });
</script>
</body>
</html>
`

func CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(callbackPage))
	}
}
