package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

func newTestLiteSession() *domain.PackSessionLite {
	return &domain.PackSessionLite{
		User:          recAddr(0x11),
		Currency:      domain.CurrencyNative,
		PaidAmount:    1_000_000,
		CreatedAt:     1_700_000_000,
		ExpiresAt:     1_700_086_400,
		RareCardKeys:  []domain.Address{recAddr(0xC1)},
		RareTemplates: []uint32{42},
		State:         domain.PackStatePendingDecision,
		TotalSlots:    domain.PackSlotCount,
		Bump:          254,
	}
}

func newTestFullSession() *domain.PackSession {
	s := &domain.PackSession{
		User:       recAddr(0x11),
		Currency:   domain.CurrencyToken,
		PaidAmount: 2_000_000,
		CreatedAt:  1_700_000_000,
		ExpiresAt:  1_700_086_400,
		State:      domain.PackStatePendingDecision,
		SlotPrices: []uint64{100, 200, 300},
	}
	for i := range s.CardKeys {
		s.CardKeys[i] = recAddr(byte(0x20 + i))
	}
	return s
}

func TestSessionRepo_CreateLite(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestLiteSession()
	addr := recAddr(0x51)

	data, err := s.Pack()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pack_sessions_lite").
		WithArgs(addr[:], data).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateLite(context.Background(), tx, addr, s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetLiteForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestLiteSession()
	addr := recAddr(0x51)

	data, err := s.Pack()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT data FROM pack_sessions_lite WHERE addr .+ FOR UPDATE").
		WithArgs(addr[:]).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(data))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetLiteForUpdate(context.Background(), tx, addr)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.User, result.User)
	assert.Equal(t, s.RareCardKeys, result.RareCardKeys)
	assert.Equal(t, s.RareTemplates, result.RareTemplates)
	assert.Equal(t, s.State, result.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetLite_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	addr := recAddr(0x51)

	mock.ExpectQuery("SELECT data FROM pack_sessions_lite WHERE addr").
		WithArgs(addr[:]).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetLite(context.Background(), addr)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_CreateFull(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestFullSession()
	addr := recAddr(0x52)

	data, err := s.Pack()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pack_sessions").
		WithArgs(addr[:], data).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateFull(context.Background(), tx, addr, s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetFullForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestFullSession()
	addr := recAddr(0x52)

	data, err := s.Pack()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT data FROM pack_sessions WHERE addr .+ FOR UPDATE").
		WithArgs(addr[:]).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(data))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetFullForUpdate(context.Background(), tx, addr)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.CardKeys, result.CardKeys)
	assert.Equal(t, s.SlotPrices, result.SlotPrices)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_UpdateLite_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestLiteSession()
	addr := recAddr(0x51)

	data, err := s.Pack()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE pack_sessions_lite SET data").
		WithArgs(data, addr[:]).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateLite(context.Background(), tx, addr, s)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_DeleteFull(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	addr := recAddr(0x52)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM pack_sessions").
		WithArgs(addr[:]).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.DeleteFull(context.Background(), tx, addr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
