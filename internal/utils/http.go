// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTrailingData is returned by DecodeJSON when the body holds more than
// one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON body")

// marshalFailureBody is written when a response value cannot be encoded.
const marshalFailureBody = `{"error":"Internal Server Error","message":"An unexpected error occurred","success":false}`

// WriteJSON encodes data and writes it with the given status and an
// application/json content type. An unencodable value produces a 500 with
// a generic error body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(marshalFailureBody))
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(body)

	return err
}

// DecodeJSON decodes exactly one JSON value from r into dst. Unknown object
// fields and trailing values are rejected.
func DecodeJSON(r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}

	if decoder.More() {
		return ErrTrailingData
	}

	return nil
}
