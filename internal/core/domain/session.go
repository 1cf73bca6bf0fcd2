package domain

import "net/http"

// Session is an authenticated HTTP client bound to one token record.
// It lives for one program run (or one forced-refresh boundary within a
// run) and has a single logical owner at a time; it is not shared
// across concurrent traversals.
type Session struct {
	// HTTP attaches the bearer token to every outbound request.
	HTTP *http.Client
	// Token is the credential bundle the client is bound to.
	Token Token
}
