// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-design-gallery/internal/store"
)

// queryRequest is the body of one statement.
type queryRequest struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
}

// envelope is the remote store response wrapper.
type envelope struct {
	Success bool          `json:"success"`
	Result  []queryResult `json:"result"`
	Errors  remoteErrors  `json:"errors"`
}

type queryResult struct {
	Results []map[string]any `json:"results"`
	Meta    struct {
		Changes json.Number `json:"changes"`
	} `json:"meta"`
}

type remoteError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type remoteErrors []remoteError

// String joins the messages as "code: message; code: message".
func (e remoteErrors) String() string {
	parts := make([]string, 0, len(e))
	for _, re := range e {
		parts = append(parts, fmt.Sprintf("%d: %s", re.Code, re.Message))
	}
	return strings.Join(parts, "; ")
}

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return envelope{}, err
	}

	return env, nil
}

// toResult flattens the first statement result into a [store.Result].
func (e envelope) toResult() store.Result {
	res := store.Result{Rows: make([]store.Row, 0)}
	if len(e.Result) == 0 {
		return res
	}

	first := e.Result[0]
	for _, r := range first.Results {
		res.Rows = append(res.Rows, store.Row(r))
	}
	if n, err := first.Meta.Changes.Int64(); err == nil {
		res.Changes = n
	}

	return res
}

// encodeParams converts statement arguments to values the store binds:
// booleans as 0/1, timestamps in the sqlite layout, byte slices as text.
func encodeParams(args []any) []any {
	params := make([]any, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case bool:
			if v {
				params[i] = 1
			} else {
				params[i] = 0
			}
		case time.Time:
			params[i] = v.UTC().Format(store.TimestampLayout)
		case []byte:
			params[i] = string(v)
		default:
			params[i] = v
		}
	}
	return params
}
