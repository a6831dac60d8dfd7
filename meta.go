// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// AVU is an attribute/value/unit metadata triple.
type AVU struct {
	Attribute string
	Value     string
	Unit      string
}

// AddMetadata attaches avu to the data object at path.
func (s *Session) AddMetadata(ctx context.Context, path string, avu AVU) error {
	return s.modAVU(ctx, "add", "-d", path, avu)
}

// RemoveMetadata detaches avu from the data object at path.
func (s *Session) RemoveMetadata(ctx context.Context, path string, avu AVU) error {
	return s.modAVU(ctx, "rm", "-d", path, avu)
}

func (s *Session) modAVU(ctx context.Context, op, targetType, path string, avu AVU) error {
	in := wire.ModAVUMetaDataInp{
		Args: [10]string{op, targetType, path, avu.Attribute, avu.Value, avu.Unit},
	}
	body := wire.EncodeModAVUMetaDataInp(make([]byte, 0, s.cfg.BufSize), in)
	_, _, err := s.apiRequest(ctx, "modAVU", apnModAVUMetadata, body, nil)
	return err
}
