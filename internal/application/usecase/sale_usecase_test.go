package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jefftricks/shamba-api/internal/application/dto"
	"github.com/jefftricks/shamba-api/internal/application/usecase"
	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
)

type memorySaleRepo struct {
	sales map[string]*entity.Sale
}

func newMemorySaleRepo() *memorySaleRepo {
	return &memorySaleRepo{sales: map[string]*entity.Sale{}}
}

func (r *memorySaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *memorySaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memorySaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *memorySaleRepo) ListByPeriod(_ context.Context, _, _ *time.Time, _ string) ([]*entity.Sale, error) {
	return r.List(context.Background())
}

func (r *memorySaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	if _, ok := r.sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *memorySaleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

func TestSaleCreateDerivesTotal(t *testing.T) {
	repo := newMemorySaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	sale, err := uc.Create(context.Background(), "user-1", dto.SaleRequest{
		ProductName: "Maize",
		ProductType: "crops",
		Quantity:    90,
		UnitPrice:   decimal.NewFromFloat(52.50),
		SaleDate:    "2026-03-15",
	})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromFloat(4725)),
		"total must be quantity times unit price, got %s", sale.TotalAmount)
	assert.Equal(t, entity.PaymentPending, sale.PaymentStatus, "payment status defaults to pending")
	assert.NotEmpty(t, sale.ID)

	stored, err := repo.GetByID(context.Background(), sale.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.TotalAmount.Equal(sale.TotalAmount))
}

func TestSaleUpdateRecomputesTotal(t *testing.T) {
	repo := newMemorySaleRepo()
	uc := usecase.NewSaleUseCase(repo)

	sale, err := uc.Create(context.Background(), "user-1", dto.SaleRequest{
		ProductName: "Milk",
		Quantity:    10,
		UnitPrice:   decimal.NewFromInt(60),
		SaleDate:    "2026-03-15",
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), sale.ID, dto.SaleRequest{
		ProductName:   "Milk",
		Quantity:      25,
		UnitPrice:     decimal.NewFromInt(65),
		SaleDate:      "2026-03-16",
		PaymentStatus: entity.PaymentPaid,
	})
	require.NoError(t, err)

	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(1625)),
		"updating quantity or unit price must re-derive the total, got %s", updated.TotalAmount)
	assert.Equal(t, entity.PaymentPaid, updated.PaymentStatus)
}

func TestSaleCreateRejectsBadInput(t *testing.T) {
	uc := usecase.NewSaleUseCase(newMemorySaleRepo())

	cases := []struct {
		name string
		req  dto.SaleRequest
	}{
		{"missing product name", dto.SaleRequest{Quantity: 1, UnitPrice: decimal.NewFromInt(10), SaleDate: "2026-03-15"}},
		{"zero quantity", dto.SaleRequest{ProductName: "Eggs", Quantity: 0, UnitPrice: decimal.NewFromInt(10), SaleDate: "2026-03-15"}},
		{"negative unit price", dto.SaleRequest{ProductName: "Eggs", Quantity: 1, UnitPrice: decimal.NewFromInt(-5), SaleDate: "2026-03-15"}},
		{"malformed date", dto.SaleRequest{ProductName: "Eggs", Quantity: 1, UnitPrice: decimal.NewFromInt(10), SaleDate: "15/03/2026"}},
		{"unknown payment status", dto.SaleRequest{ProductName: "Eggs", Quantity: 1, UnitPrice: decimal.NewFromInt(10), SaleDate: "2026-03-15", PaymentStatus: "maybe"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), "user-1", tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSaleGetMissingReturnsNotFound(t *testing.T) {
	uc := usecase.NewSaleUseCase(newMemorySaleRepo())

	_, err := uc.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
