// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells the gateway which error kind a
// failed statement surfaces as.
type ErrorClassification int

const (
	// Unavailable is the default: the statement failed for a reason the
	// caller cannot fix (transport, remote engine, syntax).
	Unavailable ErrorClassification = iota

	// UniqueViolation means a UNIQUE or PRIMARY KEY constraint rejected
	// the write.
	UniqueViolation
)

// uniqueViolationMarker is the SQLite message prefix shared by the local
// driver and the remote store's error envelope.
const uniqueViolationMarker = "UNIQUE constraint failed"

// SQLiteErrorClassifier implements [ErrorClassificator] for the SQLite
// dialect spoken by both executors. Driver errors are matched on their
// extended code; remote errors, which only carry text, on the message.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unavailable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return UniqueViolation
		default:
			return Unavailable
		}
	}

	if strings.Contains(err.Error(), uniqueViolationMarker) {
		return UniqueViolation
	}

	return Unavailable
}
