package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/mock"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// storeMocks bundles the store mocks behind a *store.Storages.
type storeMocks struct {
	transactor *mock.MockTransactor
	users      *mock.MockUserRepository
	businesses *mock.MockBusinessRepository
	products   *mock.MockProductRepository
	images     *mock.MockImageStorage
}

func newStoreMocks(t *testing.T, ctrl *gomock.Controller) (*store.Storages, storeMocks) {
	t.Helper()
	m := storeMocks{
		transactor: mock.NewMockTransactor(ctrl),
		users:      mock.NewMockUserRepository(ctrl),
		businesses: mock.NewMockBusinessRepository(ctrl),
		products:   mock.NewMockProductRepository(ctrl),
		images:     mock.NewMockImageStorage(ctrl),
	}
	return &store.Storages{
		Transactor:         m.transactor,
		UserRepository:     m.users,
		BusinessRepository: m.businesses,
		ProductRepository:  m.products,
		ImageStorage:       m.images,
	}, m
}

// runInline makes the transactor mock execute fn directly.
func runInline(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:              "test-sign-key",
			TokenIssuer:               "buy-from-me-test",
			TokenDuration:             time.Hour,
			VerificationTokenDuration: 2 * time.Hour,
			PasswordHashCost:          bcrypt.MinCost,
			BaseURL:                   "http://localhost:8000/",
			Version:                   "1.0.0",
		},
		Mail: config.Mail{Timeout: time.Second},
	}
}
