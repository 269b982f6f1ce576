// Package cli implements the interactive terminal front end of the auth
// client. It is presentation glue only: commands validate input, dispatch
// auth state store actions, and call the remote operations; the session
// semantics live in the api, store, and session packages.
package cli
