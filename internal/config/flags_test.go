package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8000}, expected: ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8000", expected: NetAddress{Host: "localhost", Port: 8000}},
		{name: "ip", input: "0.0.0.0:9000", expected: NetAddress{Host: "0.0.0.0", Port: 9000}},
		{name: "empty host", input: ":8000", expected: NetAddress{Port: 8000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "bad port", input: "localhost:abc", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8081",
		"-token-sign-key", "flag-secret",
		"-token-duration", "3h",
		"-db-driver", "sqlite",
		"-d", "file:gallery.db",
		"-bucket", "images",
		"-config", "/etc/gallery.json",
		"-debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "flag-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 3*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:gallery.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "images", cfg.Storage.Objects.Bucket)
	assert.Equal(t, "/etc/gallery.json", cfg.JSONFilePath)
	assert.True(t, cfg.App.Debug)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-nope"})
	assert.Error(t, err)
}
