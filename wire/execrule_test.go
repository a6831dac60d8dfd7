// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"strings"
	"testing"
)

func TestEncodeExecMyRuleInpContainsRuleTextAndCondInput(t *testing.T) {
	in := ExecMyRuleInp{
		RuleText:  "testRule||msiGetIcatTime(*Time,unix)##writeLine(stdout,*Time)",
		CondInput: []KeyVal{{Key: "instance_name", Value: "irods_rule_engine_plugin-irods_rule_language-instance"}},
	}
	encoded := string(EncodeExecMyRuleInp(nil, in))
	for _, want := range []string{
		"<ExecMyRuleInp_PI>", "<myRule>", "testRule",
		"<KeyValPair_PI>", "<ssLen>1</ssLen>", "instance_name",
		"irods_rule_engine_plugin-irods_rule_language-instance",
	} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded ExecMyRuleInp_PI missing %q; got %s", want, encoded)
		}
	}
}

func TestDecodeExecRuleOutDecodesStdoutStderrAndExitCode(t *testing.T) {
	stdout := EncodeBinBytesBuf(nil, []byte("hello from rule\n"))
	stderr := EncodeBinBytesBuf(nil, []byte(""))

	var xmlMsg strings.Builder
	xmlMsg.WriteString("<ExecCmdOut_PI>")
	xmlMsg.Write(stdout)
	xmlMsg.Write(stderr)
	xmlMsg.WriteString("<status>0</status>")
	xmlMsg.WriteString("</ExecCmdOut_PI>")

	got, err := DecodeExecRuleOut(decoderFor([]byte(xmlMsg.String())))
	if err != nil {
		t.Fatalf("DecodeExecRuleOut: %v", err)
	}
	if string(got.Stdout) != "hello from rule\n" {
		t.Fatalf("Stdout = %q, want %q", got.Stdout, "hello from rule\n")
	}
	if len(got.Stderr) != 0 {
		t.Fatalf("Stderr = %q, want empty", got.Stderr)
	}
	if got.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", got.ExitCode)
	}
}

func TestDecodeExecRuleOutNonZeroExitCode(t *testing.T) {
	stdout := EncodeBinBytesBuf(nil, nil)
	stderr := EncodeBinBytesBuf(nil, []byte("rule failed: object not found"))

	var xmlMsg strings.Builder
	xmlMsg.WriteString("<ExecCmdOut_PI>")
	xmlMsg.Write(stdout)
	xmlMsg.Write(stderr)
	xmlMsg.WriteString("<status>-1</status>")
	xmlMsg.WriteString("</ExecCmdOut_PI>")

	got, err := DecodeExecRuleOut(decoderFor([]byte(xmlMsg.String())))
	if err != nil {
		t.Fatalf("DecodeExecRuleOut: %v", err)
	}
	if got.ExitCode != -1 {
		t.Fatalf("ExitCode = %d, want -1", got.ExitCode)
	}
	if string(got.Stderr) != "rule failed: object not found" {
		t.Fatalf("Stderr = %q, want %q", got.Stderr, "rule failed: object not found")
	}
}
