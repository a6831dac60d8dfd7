// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// ExecMyRuleInp is the request body for executing a rule-engine rule
// server-side.
type ExecMyRuleInp struct {
	RuleText  string
	CondInput []KeyVal
}

// EncodeExecMyRuleInp writes an ExecMyRuleInp_PI into dst.
func EncodeExecMyRuleInp(dst []byte, in ExecMyRuleInp) []byte {
	b := newBuilder(dst)
	b.open("ExecMyRuleInp_PI")
	b.tag("myRule", in.RuleText)
	appendKeyValPairInline(b, in.CondInput)
	b.close("ExecMyRuleInp_PI")
	return b.bytes()
}

// ExecRuleOut carries a rule's captured standard-out and standard-error
// buffers along with its exit code.
type ExecRuleOut struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int32
}

// DecodeExecRuleOut decodes an ExecCmdOut_PI: two length-prefixed,
// base64-encoded buffers (stdout, then stderr) followed by an exit code.
func DecodeExecRuleOut(d TokenReader) (ExecRuleOut, error) {
	const msg = "ExecCmdOut_PI"
	var out ExecRuleOut

	if err := expectStart(d, msg, "Tag", "ExecCmdOut_PI"); err != nil {
		return out, err
	}

	stdout, err := decodeBinBytesBufBody(d, msg, "Stdout")
	if err != nil {
		return out, err
	}
	out.Stdout = stdout

	stderr, err := decodeBinBytesBufBody(d, msg, "Stderr")
	if err != nil {
		return out, err
	}
	out.Stderr = stderr

	exitCode, err := intField(d, msg, "ExitCode", "status")
	if err != nil {
		return out, err
	}
	out.ExitCode = int32(exitCode)

	if err := expectEnd(d, msg, "End"); err != nil {
		return out, err
	}
	return out, nil
}

// decodeBinBytesBufBody decodes a nested BinBytesBuf_PI child without
// assuming it is the outermost element, for messages like ExecCmdOut_PI
// that embed two of them.
func decodeBinBytesBufBody(d TokenReader, parentMsg, state string) ([]byte, error) {
	buf, err := DecodeBinBytesBuf(d)
	if err != nil {
		return nil, &StateError{Msg: parentMsg, State: state, Found: err.Error()}
	}
	return buf.Buf, nil
}
