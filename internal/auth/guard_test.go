package auth

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// fake codec
// ─────────────────────────────────────────────

type fakeCodec struct {
	verifyFn func(ctx context.Context, token string) (models.Principal, error)
}

func (f *fakeCodec) Issue(models.Principal, time.Duration) (string, error) {
	return "", nil
}

func (f *fakeCodec) Verify(ctx context.Context, token string) (models.Principal, error) {
	return f.verifyFn(ctx, token)
}

func TestAuthenticate(t *testing.T) {
	alice := models.Principal{ID: 1, Name: "alice"}

	codec := &fakeCodec{verifyFn: func(_ context.Context, token string) (models.Principal, error) {
		if token == "good" {
			return alice, nil
		}
		return models.Principal{}, ErrInvalidToken
	}}
	g := NewGuard(codec)

	tests := []struct {
		name    string
		header  string
		want    models.Principal
		wantErr bool
	}{
		{name: "valid", header: "Bearer good", want: alice},
		{name: "lowercase scheme", header: "bearer good", want: alice},
		{name: "surrounding spaces", header: "  Bearer   good ", want: alice},
		{name: "missing header", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "token without scheme", header: "good", wantErr: true},
		{name: "basic scheme", header: "Basic good", wantErr: true},
		{name: "extra parts", header: "Bearer good extra", wantErr: true},
		{name: "invalid token", header: "Bearer bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Authenticate(context.Background(), tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthenticated)
				assert.NotErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	g := NewGuard(&fakeCodec{})

	admin := models.Principal{ID: 1, Name: "root", IsAdmin: true}
	got, err := g.RequireAdmin(admin)
	require.NoError(t, err)
	assert.Equal(t, admin, got)

	_, err = g.RequireAdmin(models.Principal{ID: 2, Name: "alice"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

// TestGuard_WithRealCodec runs the whole chain: issue, header, verify, gate.
func TestGuard_WithRealCodec(t *testing.T) {
	codec := newTestCodec(t, time.Now())
	g := NewGuard(codec)

	token, err := codec.Issue(models.Principal{ID: 3, Name: "carol"}, time.Hour)
	require.NoError(t, err)

	p, err := g.Authenticate(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "carol", p.Name)

	_, err = g.RequireAdmin(p)
	assert.ErrorIs(t, err, ErrForbidden)

	expired, err := codec.Issue(models.Principal{ID: 3, Name: "carol"}, -time.Second)
	require.NoError(t, err)
	_, err = g.Authenticate(context.Background(), "Bearer "+expired)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
