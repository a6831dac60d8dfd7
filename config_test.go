// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConnConfigWithDefaults(t *testing.T) {
	got := ConnConfig{}.withDefaults()
	if got.BufSize != 8092 {
		t.Errorf("BufSize = %d, want 8092", got.BufSize)
	}
	if got.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", got.RequestTimeout)
	}
	if got.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", got.ReadTimeout)
	}
	if got.AuthTTL != 30 {
		t.Errorf("AuthTTL = %d, want 30", got.AuthTTL)
	}
}

func TestConnConfigWithDefaultsPreservesExplicitValues(t *testing.T) {
	in := ConnConfig{BufSize: 4096, RequestTimeout: time.Second, ReadTimeout: time.Second, AuthTTL: 5}
	got := in.withDefaults()
	if got != in {
		t.Fatalf("withDefaults() changed explicit values: got %+v, want %+v", got, in)
	}
}

func TestLoadEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "irods_environment.json")
	const contents = `{
		"irods_host": "icat.example.org",
		"irods_port": 1247,
		"irods_zone_name": "tempZone",
		"irods_user_name": "rods",
		"irods_default_resource": "demoResc",
		"irods_encryption_key_size": 32,
		"irods_encryption_algorithm": "AES-256-CBC",
		"irods_encryption_salt_size": 8,
		"irods_encryption_hash_rounds": 8,
		"irods_ca_certificate_file": "/etc/irods/ssl/ca.crt"
	}`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	env, err := LoadEnvironment(path)
	if err != nil {
		t.Fatalf("LoadEnvironment: %v", err)
	}
	want := Environment{
		Host:                 "icat.example.org",
		Port:                 1247,
		Zone:                 "tempZone",
		Username:             "rods",
		DefaultResource:      "demoResc",
		EncryptionKeySize:    32,
		EncryptionAlgorithm:  "AES-256-CBC",
		EncryptionSaltSize:   8,
		EncryptionHashRounds: 8,
		CACertificateFile:    "/etc/irods/ssl/ca.crt",
	}
	if env != want {
		t.Fatalf("LoadEnvironment() = %+v, want %+v", env, want)
	}
	if !env.HasTLS() {
		t.Fatal("HasTLS() = false, want true for a non-zero key size")
	}
}

func TestEnvironmentHasTLSFalseByDefault(t *testing.T) {
	var env Environment
	if env.HasTLS() {
		t.Fatal("HasTLS() = true for the zero Environment, want false")
	}
}

func TestLoadEnvironmentMissingFile(t *testing.T) {
	if _, err := LoadEnvironment(filepath.Join(t.TempDir(), "does-not-exist.json")); err == nil {
		t.Fatal("expected an error for a missing environment file")
	}
}
