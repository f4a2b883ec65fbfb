// Package validation provides functionality for validating webhook signatures to verify request authenticity.
package validation

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // GitHub's X-Hub-Signature header is HMAC-SHA1.
	"encoding/hex"

	"github.com/google/go-github/v84/github"
	"github.com/isometry/gh-jira-bridge/internal/failure"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
)

// SignaturePrefix is prepended to the hex digest in the X-Hub-Signature header.
const SignaturePrefix = "sha1="

// Messages reported in step results.
const (
	MsgSecretNotConfigured = "GitHub secret is not configured."
	MsgSignatureMissing    = "X-Hub-Signature header is missing."
	MsgSignatureMismatch   = "Signature verification failed."
)

// WebhookSecret represents a secret used to validate webhook signatures for verifying request authenticity.
type WebhookSecret string

// NewWebhookSecret returns nil when secret is nil, so an unset secret stays distinguishable from an empty one.
func NewWebhookSecret(secret *string) *WebhookSecret {
	if secret == nil {
		return nil
	}
	s := WebhookSecret(*secret)
	return &s
}

// Sign returns the X-Hub-Signature value for body.
func (s WebhookSecret) Sign(body []byte) string {
	mac := hmac.New(sha1.New, []byte(s))
	_, _ = mac.Write(body)
	return SignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// ValidateSignature validates the HMAC-SHA1 signature of a webhook request using the provided body and headers.
// Header names are matched case-insensitively. Failures are *failure.Error values.
func (s *WebhookSecret) ValidateSignature(body []byte, headers map[string]string) error {
	if s == nil {
		return failure.New(failure.Configuration, MsgSecretNotConfigured)
	}
	signature, found := helpers.Header(headers, github.SHA1SignatureHeader)
	if !found {
		return failure.New(failure.Validation, MsgSignatureMissing)
	}
	if !hmac.Equal([]byte(signature), []byte(s.Sign(body))) {
		return failure.New(failure.Authentication, MsgSignatureMismatch)
	}
	return nil
}
