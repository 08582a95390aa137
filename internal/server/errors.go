// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means no HTTP handler or listen address was given.
var errNoServersAreCreated = errors.New("no servers are created: http handler and address are required")
