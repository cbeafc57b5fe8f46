// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/sportbuddy/sportbuddy/internal/logging"
)

// Sentinel errors returned by data access methods. Handlers map them to
// HTTP status codes (ErrNotFound -> 404, ErrDuplicate -> 409,
// ErrCapacityReached -> 409 CAPACITY_REACHED).
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("record already exists")
	ErrCapacityReached = errors.New("playdate is at capacity")
)

// mapConstraintError converts driver constraint violations to sentinel errors.
//
// The driver surfaces SQLite constraint failures as message text; the
// "UNIQUE constraint failed" and "FOREIGN KEY constraint failed" prefixes
// are stable SQLite wording. Foreign key failures become ErrNotFound: an
// insert referencing a missing row means that row does not exist.
func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrNotFound
	}
	return err
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}
