// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the process' transport server.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives and the server
// has drained. Shutdown stops the server early.
type Server interface {
	RunServer()
	Shutdown()
}
