// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

// Account identifies who is connecting and on whose behalf. In the common
// case ProxyUser/ProxyZone and ClientUser/ClientZone are identical; they
// differ only when an administrator is proxying a connection for another
// user (rodsadmin "execute as").
type Account struct {
	ProxyUser  string
	ProxyZone  string
	ClientUser string
	ClientZone string
	Password   string

	// AuthScheme names the authentication flow for this account. The zero
	// value is AuthNative. The handshake does not consult it: every Session
	// authenticates with the native exchange.
	AuthScheme AuthScheme
}

// AuthScheme identifies a native-protocol authentication flow.
type AuthScheme int

// The authentication schemes this client implements.
const (
	// AuthNative performs the two round-trip MD5 challenge/response native
	// to the protocol.
	AuthNative AuthScheme = iota
	// AuthPAM names PAM authentication. No PAM exchange is implemented: a
	// Session whose Account selects AuthPAM still performs the native
	// exchange, and pamScramble is not called by any flow.
	AuthPAM
)

// normalize fills ClientUser/ClientZone from ProxyUser/ProxyZone when the
// caller left them blank, the common case of a non-proxied connection.
func (a Account) normalize() Account {
	if a.ClientUser == "" {
		a.ClientUser = a.ProxyUser
	}
	if a.ClientZone == "" {
		a.ClientZone = a.ProxyZone
	}
	return a
}
