// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is fatal at startup: without SERVER_ADDRESS the
// REST API has nowhere to listen.
var errNoHandlersAreCreated = errors.New("no handlers are created: server http address is empty")
