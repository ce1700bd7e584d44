// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys and the key-based ledger authorizer.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(electionID, salt)
	err := auth.ValidateAdminKey(electionID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same election ID and salt always produce the same key, so nothing is
stored. Logs carry only KeyFingerprint(adminKey), never the key itself.

# Authorizer

KeyAuthorizer implements ledger.Authorizer. It admits a caller whose
Credential is the admin key for its election and rejects everyone else with
a wrapped ledger.ErrUnauthorized:

	l := ledger.New(ledger.Options{
		Authorizer: auth.KeyAuthorizer{ElectionID: "default", Salt: salt},
	})

# IP Hashing

For logging client addresses without storing them:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
