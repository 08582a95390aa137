package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-design-gallery/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "principal", PrincipalCtxKey.String())
}

func TestPrincipalContext_RoundTrip(t *testing.T) {
	want := models.Principal{ID: 42, Name: "alice", IsAdmin: true}

	got, ok := GetPrincipalFromContext(WithPrincipal(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestPrincipalContext_Missing(t *testing.T) {
	_, ok := GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestPrincipalContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "alice")

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}
