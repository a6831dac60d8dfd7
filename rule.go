// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// RuleResult is the output of a server-side rule execution: everything the
// rule wrote to its standard streams, plus its exit code.
type RuleResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int32
}

// ExecRule runs ruleText through the server's rule engine and returns what
// it wrote to stdout/stderr along with its exit code. This mirrors irule's
// "run this text as a rule" mode rather than invoking a rule already
// installed in the rule base by name.
//
// The reply's wire format (ExecCmdOut_PI) is not exhaustively documented
// upstream; the shape implemented here — two independent base64 buffers
// followed by an exit code — is this package's own reconstruction, not a
// verified reference decode.
func (s *Session) ExecRule(ctx context.Context, ruleText string, condInput []KeyVal) (RuleResult, error) {
	in := wire.ExecMyRuleInp{
		RuleText:  ruleText,
		CondInput: toWireKeyVals(condInput),
	}
	body := wire.EncodeExecMyRuleInp(make([]byte, 0, s.cfg.BufSize), in)
	msg, _, err := s.apiRequest(ctx, "execRule", apnExecMyRule, body, nil)
	if err != nil {
		return RuleResult{}, err
	}
	out, err := wire.DecodeExecRuleOut(msgDecoder(msg))
	if err != nil {
		return RuleResult{}, wrapErr("execRule", KindEncoding, err)
	}
	return RuleResult{Stdout: out.Stdout, Stderr: out.Stderr, ExitCode: out.ExitCode}, nil
}

// KeyVal is a condition-input pair attached to a rule invocation, such as
// the rule engine instance to target.
type KeyVal struct {
	Key   string
	Value string
}

func toWireKeyVals(kv []KeyVal) []wire.KeyVal {
	if len(kv) == 0 {
		return nil
	}
	out := make([]wire.KeyVal, len(kv))
	for i, p := range kv {
		out[i] = wire.KeyVal{Key: p.Key, Value: p.Value}
	}
	return out
}
