// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// Admin dispatches a raw administrative request; Args[0] selects the
// subcommand ("add", "rm", "modify", ...) and the remaining slots are
// interpreted according to it, mirroring the iadmin command's own
// argument-passing convention. Helpers like CreateUser build on this for
// the common cases.
func (s *Session) Admin(ctx context.Context, args [10]string) error {
	body := wire.EncodeGeneralAdminInp(make([]byte, 0, s.cfg.BufSize), wire.GeneralAdminInp{Args: args})
	_, _, err := s.apiRequest(ctx, "admin", apnGeneralAdmin, body, nil)
	return err
}

// CreateUser is Admin("add", "user", name, zone, "rodsuser").
func (s *Session) CreateUser(ctx context.Context, name, zone string) error {
	return s.Admin(ctx, [10]string{"add", "user", name, zone, "rodsuser"})
}

// RemoveUser is Admin("rm", "user", name, zone).
func (s *Session) RemoveUser(ctx context.Context, name, zone string) error {
	return s.Admin(ctx, [10]string{"rm", "user", name, zone})
}
