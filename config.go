// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"crypto/tls"
	"encoding/json"
	"log"
	"os"
	"time"
)

// CSNegPolicy is the client's stated stance in cs-negotiation. It is
// combined with the server's stance by the table in combineCSNegPolicy to
// decide whether the session upgrades to TLS.
type CSNegPolicy int

// The three negotiation stances a client may declare.
const (
	CSNegDontCare CSNegPolicy = iota
	CSNegRequire
	CSNegRefuse
)

// ConnConfig controls buffer sizing, timeouts, authentication TTL, TLS
// negotiation, and debug logging for a Session. The zero value is usable and
// fills in the defaults documented on each field.
type ConnConfig struct {
	// BufSize is the initial scratch buffer size for encoding and decoding
	// messages. Buffers grow past this as needed; it only avoids early
	// reallocation. Defaults to wire.DefaultScratchSize.
	BufSize int

	// RequestTimeout bounds a full request/reply round trip. Defaults to 5
	// seconds.
	RequestTimeout time.Duration
	// ReadTimeout bounds a single Read on the underlying transport.
	// Defaults to 5 seconds.
	ReadTimeout time.Duration

	// AuthTTL is the lifetime, in minutes, requested for the native
	// authentication token. Defaults to 30.
	AuthTTL int

	// CSNegPolicy is this client's stance on TLS. Defaults to
	// CSNegDontCare.
	CSNegPolicy CSNegPolicy

	// TLSConfig is used to upgrade the connection when negotiation selects
	// SSL. If nil and TLS is selected, an empty tls.Config is used: it sets
	// no ServerName and no root CAs, and Environment.CACertificateFile is
	// not consulted.
	TLSConfig *tls.Config

	// DebugLog, when non-nil, receives a line for every API request sent
	// and every API reply received; the startup, version, and cs-negotiation
	// messages and the collection-delete exchange are not logged. It carries no third-party dependency: library code logs
	// through the standard log.Logger the same way the rest of this
	// module's ancestry does, leaving format and destination to the
	// caller.
	DebugLog *log.Logger
}

// withDefaults returns a copy of c with zero-valued fields replaced by their
// documented defaults.
func (c ConnConfig) withDefaults() ConnConfig {
	if c.BufSize == 0 {
		c.BufSize = 8092
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 5 * time.Second
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.AuthTTL == 0 {
		c.AuthTTL = 30
	}
	return c
}

// Environment mirrors the subset of an irods_environment.json file this
// client consults. Fields absent from the file decode to their zero value;
// a zero KeySize means "no TLS configured" per the protocol's convention.
type Environment struct {
	Host             string `json:"irods_host"`
	Port             int    `json:"irods_port"`
	Zone             string `json:"irods_zone_name"`
	Username         string `json:"irods_user_name"`
	DefaultResource  string `json:"irods_default_resource"`
	EncryptionKeySize int    `json:"irods_encryption_key_size"`
	EncryptionAlgorithm string `json:"irods_encryption_algorithm"`
	EncryptionSaltSize  int    `json:"irods_encryption_salt_size"`
	EncryptionHashRounds int   `json:"irods_encryption_hash_rounds"`
	CACertificateFile   string `json:"irods_ca_certificate_file"`
}

// LoadEnvironment reads and decodes an irods_environment.json file from
// path.
func LoadEnvironment(path string) (Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		return Environment{}, err
	}
	defer f.Close()

	var env Environment
	if err := json.NewDecoder(f).Decode(&env); err != nil {
		return Environment{}, err
	}
	return env, nil
}

// HasTLS reports whether the environment carries enough information to
// attempt a TLS upgrade during cs-negotiation.
func (e Environment) HasTLS() bool {
	return e.EncryptionKeySize > 0
}
