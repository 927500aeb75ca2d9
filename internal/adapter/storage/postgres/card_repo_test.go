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

func newTestCardRecord() *domain.CardRecord {
	return &domain.CardRecord{
		Vault:      recAddr(0x0B),
		Asset:      recAddr(0x0E),
		TemplateID: 42,
		Rarity:     domain.RarityUltraRare,
		Status:     domain.CardStatusAvailable,
		Owner:      recAddr(0x0D),
	}
}

func TestCardRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	card := newTestCardRecord()
	addr := recAddr(0xC1)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO card_records").
		WithArgs(addr[:], card.Pack()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, addr, card)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	card := newTestCardRecord()
	addr := recAddr(0xC1)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT data FROM card_records WHERE addr .+ FOR UPDATE").
		WithArgs(addr[:]).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(card.Pack()))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, addr)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, card.TemplateID, result.TemplateID)
	assert.Equal(t, card.Rarity, result.Rarity)
	assert.Equal(t, card.Status, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_GetForUpdate_MalformedBytes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	addr := recAddr(0xC1)

	// Right length, unknown rarity byte.
	card := newTestCardRecord()
	data := card.Pack()
	data[8+32+32+4] = 0xFF

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT data FROM card_records WHERE addr .+ FOR UPDATE").
		WithArgs(addr[:]).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(data))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	_, err = repo.GetForUpdate(context.Background(), tx, addr)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRecord))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	addr := recAddr(0xC1)

	mock.ExpectQuery("SELECT data FROM card_records WHERE addr").
		WithArgs(addr[:]).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.Get(context.Background(), addr)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_Rewrite_Upserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock)
	card := newTestCardRecord()
	addr := recAddr(0xC1)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO card_records .+ ON CONFLICT").
		WithArgs(addr[:], card.Pack()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Rewrite(context.Background(), tx, addr, card)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
