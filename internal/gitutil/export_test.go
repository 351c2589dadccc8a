package gitutil

import "os/user"

// SetUserLookup replaces the OS user lookup and returns a restore func.
func SetUserLookup(fn func() (*user.User, error)) func() {
	prev := lookupUser
	lookupUser = fn
	return func() { lookupUser = prev }
}
