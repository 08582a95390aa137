// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned when the prompt is closed without submitting.
var ErrUserQuit = errors.New("prompt cancelled by user")
