package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

// mobileState carries the PKCE verifier and return target across the OAuth
// redirect, packed into the opaque `state` parameter instead of a server-side
// session. Field names stay compact because the blob rides in a URL.
type mobileState struct {
	ReturnURL string `json:"r"`
	Verifier  string `json:"v"`
	IssuedAt  int64  `json:"t"` // unix millis
}

const stateMaxAge = 10 * time.Minute

var (
	errStateMalformed = errors.New("invalid state")
	errStateExpired   = errors.New("state expired")
)

func encodeState(s mobileState) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeState(blob string, now time.Time) (*mobileState, error) {
	raw, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil {
		return nil, errStateMalformed
	}
	var s mobileState
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errStateMalformed
	}
	if s.ReturnURL == "" || s.Verifier == "" {
		return nil, errStateMalformed
	}
	if s.IssuedAt <= 0 || now.Sub(time.UnixMilli(s.IssuedAt)) > stateMaxAge {
		return nil, errStateExpired
	}
	return &s, nil
}
