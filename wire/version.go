// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the server's reply to a StartupPack.
type Version struct {
	Status     int32
	RelVersion [3]int
	APIVersion string
	ReconnPort int
	ReconnAddr string
	Cookie     int
}

// DecodeVersion decodes a Version_PI using an explicit state machine.
func DecodeVersion(d TokenReader) (Version, error) {
	const msg = "Version_PI"
	var v Version

	if err := expectStart(d, msg, "Tag", "Version_PI"); err != nil {
		return v, err
	}
	status, err := intField(d, msg, "Status", "status")
	if err != nil {
		return v, err
	}
	v.Status = int32(status)

	relVersion, err := textField(d, msg, "RelVersion", "relVersion")
	if err != nil {
		return v, err
	}
	v.RelVersion, err = parseRelVersion(relVersion)
	if err != nil {
		return v, &StateError{Msg: msg, State: "RelVersion", Found: err.Error()}
	}

	v.APIVersion, err = textField(d, msg, "ApiVersion", "apiVersion")
	if err != nil {
		return v, err
	}

	reconnPort, err := intField(d, msg, "ReconnPort", "reconnPort")
	if err != nil {
		return v, err
	}
	v.ReconnPort = int(reconnPort)

	v.ReconnAddr, err = textField(d, msg, "ReconnAddr", "reconnAddr")
	if err != nil {
		return v, err
	}

	cookie, err := intField(d, msg, "Cookie", "cookie")
	if err != nil {
		return v, err
	}
	v.Cookie = int(cookie)

	if err := expectEnd(d, msg, "End"); err != nil {
		return v, err
	}
	return v, nil
}

// parseRelVersion parses a "rodsM.m.p" string into its three components.
func parseRelVersion(s string) ([3]int, error) {
	var out [3]int
	if len(s) <= 4 || s[:4] != "rods" {
		return out, fmt.Errorf("bad relVersion %q", s)
	}
	parts := strings.SplitN(s[4:], ".", 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, fmt.Errorf("bad relVersion component %q: %w", p, err)
		}
		out[i] = n
	}
	return out, nil
}
