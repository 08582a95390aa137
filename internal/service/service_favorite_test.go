package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/mock"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var alice = models.Principal{ID: 21, Name: "alice"}

func newTestFavoriteService(t *testing.T) (FavoriteService, *mock.MockFavoriteRepository, *mock.MockDesignRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	favorites := mock.NewMockFavoriteRepository(ctrl)
	designs := mock.NewMockDesignRepository(ctrl)
	objects := mock.NewMockObjectStore(ctrl)
	objects.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(key string) string {
		return publicBase + key
	}).AnyTimes()

	return NewFavoriteService(favorites, designs, objects, logger.Nop()), favorites, designs
}

func TestFavoriteService_Add(t *testing.T) {
	for _, added := range []bool{true, false} {
		svc, favorites, designs := newTestFavoriteService(t)
		designs.EXPECT().GetByID(gomock.Any(), int64(3)).Return(models.Design{ID: 3}, nil)
		favorites.EXPECT().Add(gomock.Any(), alice.ID, int64(3)).Return(added, nil)

		require.NoError(t, svc.Add(context.Background(), alice, 3))
	}
}

func TestFavoriteService_Add_MissingDesign(t *testing.T) {
	svc, _, designs := newTestFavoriteService(t)
	designs.EXPECT().GetByID(gomock.Any(), int64(3)).Return(models.Design{}, store.ErrNotFound)

	require.ErrorIs(t, svc.Add(context.Background(), alice, 3), ErrDesignNotFound)
}

func TestFavoriteService_Remove(t *testing.T) {
	svc, favorites, _ := newTestFavoriteService(t)
	favorites.EXPECT().Remove(gomock.Any(), alice.ID, int64(3)).Return(nil)
	favorites.EXPECT().Remove(gomock.Any(), alice.ID, int64(4)).Return(store.ErrNotFound)

	require.NoError(t, svc.Remove(context.Background(), alice, 3))
	require.ErrorIs(t, svc.Remove(context.Background(), alice, 4), ErrNotFound)
}

func TestFavoriteService_List(t *testing.T) {
	svc, favorites, _ := newTestFavoriteService(t)
	favorites.EXPECT().ListDesigns(gomock.Any(), alice.ID).Return([]models.Design{{ID: 1, ObjectKey: "x.jpg"}}, nil)

	got, err := svc.List(context.Background(), alice)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, publicBase+"x.jpg", got[0].ImageURL)
}

func TestFavoriteService_List_EmptyIsNotNil(t *testing.T) {
	svc, favorites, _ := newTestFavoriteService(t)
	favorites.EXPECT().ListDesigns(gomock.Any(), alice.ID).Return(nil, nil)

	got, err := svc.List(context.Background(), alice)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
