// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/evote/ledger"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// GenerateAdminKey creates an HMAC-based admin key for an election
// This is deterministic and verifiable
func GenerateAdminKey(electionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(electionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the election
func ValidateAdminKey(electionID, adminKey, salt string) error {
	expected := GenerateAdminKey(electionID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for log correlation
	return hex.EncodeToString(sum[:8])
}

// KeyFingerprint identifies an admin key in logs without revealing it: the
// first 8 hex chars of its SHA-256.
func KeyFingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}

// KeyAuthorizer admits callers whose credential is the election's admin key.
type KeyAuthorizer struct {
	ElectionID string
	Salt       string
}

func (a KeyAuthorizer) Authorize(_ context.Context, action ledger.Action, caller ledger.Caller) error {
	if caller.Credential == "" {
		return fmt.Errorf("%w: %s requires an admin key", ledger.ErrUnauthorized, action)
	}
	if err := ValidateAdminKey(a.ElectionID, caller.Credential, a.Salt); err != nil {
		return fmt.Errorf("%w: %w", ledger.ErrUnauthorized, err)
	}
	return nil
}
