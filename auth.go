// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"go.irods.dev/client/wire"
)

// authRequest is round 1's envelope: client asks the server to begin a
// native auth exchange.
type authRequest struct {
	ATTL                string `json:"a_ttl"`
	ForcePasswordPrompt string `json:"force_password_prompt"`
	NextOperation       string `json:"next_operation"`
	Scheme              string `json:"scheme"`
	UserName            string `json:"user_name"`
	ZoneName            string `json:"zone_name"`
}

// authRequestReply is round 1's reply: request_result seeds the digest and
// the session signature.
type authRequestReply struct {
	ATTL                string `json:"a_ttl"`
	ForcePasswordPrompt string `json:"force_password_prompt"`
	NextOperation       string `json:"next_operation"`
	RequestResult       string `json:"request_result"`
	Scheme              string `json:"scheme"`
	UserName            string `json:"user_name"`
	ZoneName            string `json:"zone_name"`
}

// authResponse is round 2's envelope: the client proves it knows the
// password by returning the expected digest.
type authResponse struct {
	ATTL                string `json:"a_ttl"`
	ForcePasswordPrompt string `json:"force_password_prompt"`
	NextOperation       string `json:"next_operation"`
	Scheme              string `json:"scheme"`
	UserName            string `json:"user_name"`
	ZoneName            string `json:"zone_name"`
	Digest              string `json:"digest"`
}

// authenticate performs the two-round-trip native auth challenge/response.
// On success it leaves s.signature populated with the 16-byte value
// captured from round 1's request_result, for later use by PAM-style
// scrambling if the caller needs it.
func (s *Session) authenticate(ctx context.Context, account Account) error {
	req := authRequest{
		ATTL:                strconv.Itoa(s.cfg.AuthTTL),
		ForcePasswordPrompt: "true",
		NextOperation:       "auth_agent_auth_request",
		Scheme:              "native",
		UserName:            account.ClientUser,
		ZoneName:            account.ClientZone,
	}
	var reply authRequestReply
	if err := s.authRoundTrip(ctx, req, &reply); err != nil {
		return err
	}

	if len(reply.RequestResult) < 16 {
		return wrapErr("authenticate", KindAuth, fmt.Errorf("request_result too short for signature: %d bytes", len(reply.RequestResult)))
	}
	s.signature = []byte(reply.RequestResult[:16])

	digest := nativeDigest(reply.RequestResult, account.Password)

	resp := authResponse{
		ATTL:                strconv.Itoa(s.cfg.AuthTTL),
		ForcePasswordPrompt: "true",
		NextOperation:       "auth_agent_auth_response",
		Scheme:              "native",
		UserName:            account.ClientUser,
		ZoneName:            account.ClientZone,
		Digest:              digest,
	}
	var finalReply map[string]interface{}
	if err := s.authRoundTrip(ctx, resp, &finalReply); err != nil {
		return err
	}
	return nil
}

// nativeDigest computes the base64 digest a native-auth round 2 request
// proves: MD5(requestResult || zero-padded-password-to-50-bytes).
func nativeDigest(requestResult, password string) string {
	var pad [50]byte
	copy(pad[:], password)

	h := md5.New()
	h.Write([]byte(requestResult))
	h.Write(pad[:])
	sum := h.Sum(nil)
	return base64.StdEncoding.EncodeToString(sum)
}

// authRoundTrip marshals req to JSON, base64-encodes it into a
// BinBytesBuf_PI, sends it as a RODS_API_REQ against the authentication API
// number, and unmarshals the reply's envelope into resp.
func (s *Session) authRoundTrip(ctx context.Context, req, resp interface{}) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return wrapErr("authenticate", KindEncoding, err)
	}
	body := wire.EncodeBinBytesBuf(make([]byte, 0, s.cfg.BufSize), payload)

	msg, _, err := s.apiRequest(ctx, "authenticate", apnAuthRequest, body, nil)
	if err != nil {
		return err
	}

	buf, err := wire.DecodeBinBytesBuf(msgDecoder(msg))
	if err != nil {
		return wrapErr("authenticate", KindEncoding, err)
	}
	if err := json.Unmarshal(buf.Buf, resp); err != nil {
		return wrapErr("authenticate", KindEncoding, err)
	}
	return nil
}

// pamScramble is the obfuscated-password primitive a PAM authentication
// flow would build on: MD5(password || signature || zero-pad-to-100),
// hex-encoded, prefixed with "A.ObfV2" and one random byte. The protocol
// this was reverse-derived from never finishes specifying how the scrambled
// value flows into the PAM API's subsequent message, so this function is an
// unwired primitive: correct in isolation, not yet plumbed into a PAM
// Authenticate flow. See DESIGN.md.
func pamScramble(password string, signature []byte) (string, error) {
	var buf [100]byte
	n := copy(buf[:], password)
	n += copy(buf[n:], signature)
	_ = n

	var randByte [1]byte
	if _, err := rand.Read(randByte[:]); err != nil {
		return "", err
	}

	h := md5.New()
	h.Write(buf[:])
	sum := h.Sum(nil)

	return "A.ObfV2" + string(randByte[:]) + fmt.Sprintf("%x", sum), nil
}
