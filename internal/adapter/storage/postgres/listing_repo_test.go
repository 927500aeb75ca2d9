package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

func newTestListing() *domain.Listing {
	mint := recAddr(0x0F)
	return &domain.Listing{
		Vault:       recAddr(0x0B),
		Seller:      recAddr(0x11),
		Asset:       recAddr(0x0E),
		Price:       1000,
		PaymentMint: &mint,
		Status:      domain.ListingStatusActive,
	}
}

func TestListingRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	l := newTestListing()
	addr := recAddr(0x61)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO listings").
		WithArgs(addr[:], l.Pack()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, addr, l)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	l := newTestListing()
	addr := recAddr(0x61)

	mock.ExpectQuery("SELECT data FROM listings WHERE addr").
		WithArgs(addr[:]).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(l.Pack()))

	result, err := repo.Get(context.Background(), addr)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, l.Seller, result.Seller)
	assert.Equal(t, l.Price, result.Price)
	require.NotNil(t, result.PaymentMint)
	assert.Equal(t, *l.PaymentMint, *result.PaymentMint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Get_MalformedStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	l := newTestListing()
	addr := recAddr(0x61)

	data := l.Pack()
	data[len(data)-1] = 0xFF

	mock.ExpectQuery("SELECT data FROM listings WHERE addr").
		WithArgs(addr[:]).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(data))

	_, err = repo.Get(context.Background(), addr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRecord))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_GetForUpdate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	addr := recAddr(0x61)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT data FROM listings WHERE addr .+ FOR UPDATE").
		WithArgs(addr[:]).
		WillReturnError(pgx.ErrNoRows)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, addr)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	addr := recAddr(0x61)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM listings").
		WithArgs(addr[:]).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Delete(context.Background(), tx, addr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
