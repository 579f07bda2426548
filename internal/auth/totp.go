// Package auth derives the Authorization header for Gameflip API requests
// from a key/secret credential using time-based one-time passcodes.
package auth

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/baonguyenly/gfapi/internal/constants"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// Credential is the immutable key/secret pair plus the TOTP parameters used
// to derive codes from it.
type Credential struct {
	Key       string
	Secret    string
	Algorithm otp.Algorithm
	Digits    otp.Digits
	Period    uint
}

// NewCredential builds a Credential with the Gameflip defaults: SHA-1,
// 6 digits, 30-second period, base32 secret.
func NewCredential(key, secret string) Credential {
	return Credential{
		Key:       key,
		Secret:    secret,
		Algorithm: otp.AlgorithmSHA1,
		Digits:    otp.Digits(constants.DefaultTOTPDigits),
		Period:    uint(constants.DefaultTOTPPeriod / time.Second),
	}
}

// TOTPSigner formats Authorization header values. It is a pure function of
// the credential and the clock; no state is retained between calls, so one
// signer is safe for concurrent use.
type TOTPSigner struct {
	credential Credential
	now        func() time.Time
}

// SignerOption configures a TOTPSigner.
type SignerOption func(*TOTPSigner)

// WithClock overrides the signer's time source.
func WithClock(now func() time.Time) SignerOption {
	return func(s *TOTPSigner) {
		s.now = now
	}
}

// NewTOTPSigner creates a signer for the credential.
func NewTOTPSigner(credential Credential, opts ...SignerOption) *TOTPSigner {
	signer := &TOTPSigner{
		credential: credential,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(signer)
	}

	return signer
}

// Authorization returns the header value "GFAPI <key>:<code>" for the
// current time bucket. A secret that is not valid base32 fails with
// gfapi.ErrMalformedSecret.
func (s *TOTPSigner) Authorization() (string, error) {
	code, err := totp.GenerateCodeCustom(s.credential.Secret, s.now(), totp.ValidateOpts{
		Period:    s.credential.Period,
		Digits:    s.credential.Digits,
		Algorithm: s.credential.Algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", gfapi.ErrMalformedSecret, err)
	}

	return constants.AuthScheme + " " + s.credential.Key + ":" + code, nil
}
