// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "fmt"

// CSNegPolicy is a client or server's stance on TLS for the remainder of the
// session, as declared during cs-negotiation.
type CSNegPolicy int

// The three negotiation stances the protocol recognizes.
const (
	CSNegDontCare CSNegPolicy = iota
	CSNegRequire
	CSNegRefuse
)

func (p CSNegPolicy) String() string {
	switch p {
	case CSNegDontCare:
		return "CS_NEG_DONT_CARE"
	case CSNegRequire:
		return "CS_NEG_REQUIRE"
	case CSNegRefuse:
		return "CS_NEG_REFUSE"
	default:
		return fmt.Sprintf("CSNegPolicy(%d)", int(p))
	}
}

func parseCSNegPolicy(s string) (CSNegPolicy, error) {
	switch s {
	case "CS_NEG_DONT_CARE":
		return CSNegDontCare, nil
	case "CS_NEG_REQUIRE":
		return CSNegRequire, nil
	case "CS_NEG_REFUSE":
		return CSNegRefuse, nil
	default:
		return 0, fmt.Errorf("unrecognized cs-neg policy %q", s)
	}
}

// CSNegResult is what the client writes back after deciding the outcome.
type CSNegResult int

// The two outcomes a client can select after combining policies.
const (
	CSNegUseTCP CSNegResult = iota
	CSNegUseSSL
)

func (r CSNegResult) String() string {
	if r == CSNegUseSSL {
		return "CS_NEG_USE_SSL"
	}
	return "CS_NEG_USE_TCP"
}

// ServerCSNeg is the server's negotiation offer.
type ServerCSNeg struct {
	Status int32
	Result CSNegPolicy
}

// ClientCSNeg is the client's negotiation reply.
type ClientCSNeg struct {
	Status int32
	Result CSNegResult
}

// DecodeServerCSNeg decodes a CS_NEG_PI carrying the server's policy.
func DecodeServerCSNeg(d TokenReader) (ServerCSNeg, error) {
	const msg = "CS_NEG_PI"
	var n ServerCSNeg

	if err := expectStart(d, msg, "Tag", "CS_NEG_PI"); err != nil {
		return n, err
	}
	status, err := intField(d, msg, "Status", "status")
	if err != nil {
		return n, err
	}
	n.Status = int32(status)

	result, err := textField(d, msg, "Result", "result")
	if err != nil {
		return n, err
	}
	n.Result, err = parseCSNegPolicy(result)
	if err != nil {
		return n, &StateError{Msg: msg, State: "Result", Found: err.Error()}
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return n, err
	}
	return n, nil
}

// EncodeClientCSNeg writes a CS_NEG_PI carrying the client's decision.
func EncodeClientCSNeg(dst []byte, n ClientCSNeg) []byte {
	b := newBuilder(dst)
	b.open("CS_NEG_PI")
	b.tagInt("status", int64(n.Status))
	b.tag("result", "cs_neg_result_kw="+n.Result.String())
	b.close("CS_NEG_PI")
	return b.bytes()
}
