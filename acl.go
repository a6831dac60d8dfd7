// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// AccessLevel names a permission level iRODS recognizes for Chmod.
type AccessLevel string

// The access levels the catalog recognizes.
const (
	AccessNull   AccessLevel = "null"
	AccessRead   AccessLevel = "read"
	AccessWrite  AccessLevel = "write"
	AccessOwn    AccessLevel = "own"
)

// Chmod sets user's access level on path. Recursive applies the change to
// every object under path when it names a collection.
func (s *Session) Chmod(ctx context.Context, path, user, zone string, level AccessLevel, recursive bool) error {
	in := wire.ModAccessControl{
		Recursive:   recursive,
		AccessLevel: string(level),
		UserName:    user,
		Zone:        zone,
		Path:        path,
	}
	body := wire.EncodeModAccessControl(make([]byte, 0, s.cfg.BufSize), in)
	_, _, err := s.apiRequest(ctx, "chmod", apnModAccessControl, body, nil)
	return err
}
