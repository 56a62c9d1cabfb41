package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/mock"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC)

func newTestProductSvc(t *testing.T, ctrl *gomock.Controller) (*productService, storeMocks, *mock.MockOwnershipGuard) {
	t.Helper()
	storages, m := newStoreMocks(t, ctrl)
	guard := mock.NewMockOwnershipGuard(ctrl)

	svc := NewProductService(guard, storages, validators.NewInputValidator(), logger.Nop()).(*productService)
	svc.now = func() time.Time { return fixedNow }

	return svc, m, guard
}

func TestProductService_CreateProduct_ComputesDiscount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, guard := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	input := models.ProductInput{Name: "Mug", Category: "Kitchen", OriginalPrice: 20, NewPrice: 15}

	guard.EXPECT().OwnBusiness(ctx, alice).Return(models.Business{ID: 10, OwnerID: alice.ID}, nil)
	m.products.EXPECT().CreateProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Product) (models.Product, error) {
			assert.Equal(t, int64(10), p.BusinessID)
			assert.InDelta(t, 25.0, p.PercentageDiscount, 1e-9)
			assert.Equal(t, models.DefaultProductImage, p.Image)
			assert.Equal(t, fixedNow, p.DatePublished)
			p.ID = 100
			return p, nil
		},
	)

	product, err := svc.CreateProduct(ctx, alice, input)
	require.NoError(t, err)
	assert.Equal(t, int64(100), product.ID)
	assert.InDelta(t, 25.0, product.PercentageDiscount, 1e-9)
}

func TestProductService_CreateProduct_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestProductSvc(t, ctrl)

	_, err := svc.CreateProduct(context.Background(), alice, models.ProductInput{Name: "", OriginalPrice: 10})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestProductService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	page := models.Page{Limit: 2, Offset: 1}
	want := []models.Product{{ID: 2}, {ID: 3}}
	m.products.EXPECT().ListProducts(ctx, page).Return(want, nil)

	got, err := svc.ListProducts(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_GetProduct_WithBusinessDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	product := models.Product{ID: 5, Name: "Mug", BusinessID: 10}
	owner := alice
	owner.JoinDate = time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)

	m.products.EXPECT().FindProductByID(ctx, int64(5)).Return(product, nil)
	m.businesses.EXPECT().FindBusinessByID(ctx, int64(10)).Return(models.Business{
		ID: 10, Name: "Alice Shop", City: "Kazan", Region: "Tatarstan", Logo: "default.jpg", OwnerID: alice.ID,
	}, nil)
	m.users.EXPECT().FindUserByID(ctx, alice.ID).Return(owner, nil)

	got, err := svc.GetProduct(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, product, got.Product)
	assert.Equal(t, models.BusinessDetails{
		Name:       "Alice Shop",
		City:       "Kazan",
		Region:     "Tatarstan",
		Logo:       "default.jpg",
		OwnerID:    alice.ID,
		OwnerEmail: alice.Email,
		JoinedDate: "12/31/2024",
	}, got.Business)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, _ := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	m.products.EXPECT().FindProductByID(ctx, int64(404)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, 404)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_UpdateProduct_Republishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, guard := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	existing := models.Product{ID: 5, Name: "Mug", OriginalPrice: 20, NewPrice: 20, Image: "a.png", BusinessID: 10}
	input := models.ProductInput{Name: "Big Mug", OriginalPrice: 40, NewPrice: 30}

	guard.EXPECT().AuthorizeProduct(ctx, alice, int64(5)).Return(existing, nil)
	m.products.EXPECT().UpdateProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Product) (models.Product, error) {
			assert.Equal(t, "Big Mug", p.Name)
			assert.Equal(t, "a.png", p.Image)
			assert.Equal(t, int64(10), p.BusinessID)
			assert.InDelta(t, 25.0, p.PercentageDiscount, 1e-9)
			assert.Equal(t, fixedNow, p.DatePublished)
			return p, nil
		},
	)

	_, err := svc.UpdateProduct(ctx, alice, 5, input)
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, guard := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	guard.EXPECT().AuthorizeProduct(ctx, bob, int64(5)).Return(models.Product{}, ErrUnauthorizedAction)

	_, err := svc.UpdateProduct(ctx, bob, 5, models.ProductInput{Name: "x", OriginalPrice: 1})
	assert.ErrorIs(t, err, ErrUnauthorizedAction)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m, guard := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	guard.EXPECT().AuthorizeProduct(ctx, alice, int64(5)).Return(models.Product{ID: 5}, nil)
	m.products.EXPECT().DeleteProduct(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.DeleteProduct(ctx, alice, 5))
}

func TestProductService_DeleteProduct_ForeignOwnerKeepsProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, guard := newTestProductSvc(t, ctrl)
	ctx := context.Background()

	guard.EXPECT().AuthorizeProduct(ctx, bob, int64(5)).Return(models.Product{}, ErrUnauthorizedAction)

	// DeleteProduct on the repository must not be reached
	err := svc.DeleteProduct(ctx, bob, 5)
	assert.ErrorIs(t, err, ErrUnauthorizedAction)
}
