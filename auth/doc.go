// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key derivation and validation.

The admin key protecting POST /admin/recalculate is derived from the
deployment's ADMIN_KEY_SALT with HMAC-SHA256:

	key := auth.AdminKey(cfg.AdminKeySalt)

and validated in constant time:

	if err := auth.ValidateAdminKey(presented, cfg.AdminKeySalt); err != nil {
		// 401
	}

GenerateID produces random hex identifiers (request ids and the like).
*/
package auth
