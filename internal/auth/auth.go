// Package auth gates the application behind a static operator credential
// pair. This is a deployment placeholder, not real authentication: replace
// it before any multi-operator rollout.
package auth

import "crypto/subtle"

const (
	userID  = "admin"
	passKey = "admin"
)

// Check verifies the operator credentials.
func Check(user, pass string) bool {
	u := subtle.ConstantTimeCompare([]byte(user), []byte(userID))
	p := subtle.ConstantTimeCompare([]byte(pass), []byte(passKey))
	return u&p == 1
}
