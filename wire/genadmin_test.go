// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"strings"
	"testing"
)

func TestEncodeGeneralAdminInp(t *testing.T) {
	in := GeneralAdminInp{Args: [10]string{"add", "user", "alice", "rodsuser", "tempZone"}}
	encoded := string(EncodeGeneralAdminInp(nil, in))
	for _, want := range []string{
		"<GeneralAdminInp_PI>",
		"<arg0>add</arg0>", "<arg1>user</arg1>", "<arg2>alice</arg2>",
		"<arg3>rodsuser</arg3>", "<arg4>tempZone</arg4>", "<arg9></arg9>",
	} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded GeneralAdminInp_PI missing %q; got %s", want, encoded)
		}
	}
}

func TestEncodeModAVUMetaDataInp(t *testing.T) {
	in := ModAVUMetaDataInp{Args: [10]string{"add", "-d", "/tempZone/home/rods/foo", "ipc::key", "value", "unit"}}
	encoded := string(EncodeModAVUMetaDataInp(nil, in))
	for _, want := range []string{
		"<ModAVUMetaDataInp_PI>",
		"<arg0>add</arg0>", "<arg1>-d</arg1>",
		"<arg3>ipc::key</arg3>", "<arg4>value</arg4>", "<arg5>unit</arg5>",
	} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded ModAVUMetaDataInp_PI missing %q; got %s", want, encoded)
		}
	}
}

func TestEncodeModAccessControl(t *testing.T) {
	in := ModAccessControl{
		Recursive:   true,
		AccessLevel: "read",
		UserName:    "alice",
		Zone:        "tempZone",
		Path:        "/tempZone/home/rods/sub",
	}
	encoded := string(EncodeModAccessControl(nil, in))
	for _, want := range []string{
		"<modAccessControl_PI>", "<recursiveFlag>1</recursiveFlag>",
		"<accessLevel>read</accessLevel>", "<userName>alice</userName>",
		"<zone>tempZone</zone>", "<path>/tempZone/home/rods/sub</path>",
	} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded modAccessControl_PI missing %q; got %s", want, encoded)
		}
	}
}

func TestEncodeModAccessControlNonRecursive(t *testing.T) {
	encoded := string(EncodeModAccessControl(nil, ModAccessControl{}))
	if !strings.Contains(encoded, "<recursiveFlag>0</recursiveFlag>") {
		t.Errorf("expected recursiveFlag 0 for zero-value input; got %s", encoded)
	}
}
