package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

// CardRepo implements ports.CardRepository. Decode failures surface as
// domain.ErrBadRecord so the admin repair paths can rebuild the row instead
// of failing the call.
type CardRepo struct {
	pool Pool
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

// Create inserts a card record within a database transaction.
func (r *CardRepo) Create(ctx context.Context, tx pgx.Tx, addr domain.Address, card *domain.CardRecord) error {
	query := `INSERT INTO card_records (addr, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())`

	_, err := tx.Exec(ctx, query, addr[:], card.Pack())
	if err != nil {
		return fmt.Errorf("insert card record: %w", err)
	}
	return nil
}

// Get fetches a card record by address (without locking).
func (r *CardRepo) Get(ctx context.Context, addr domain.Address) (*domain.CardRecord, error) {
	query := `SELECT data FROM card_records WHERE addr = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card record: %w", err)
	}
	return decodeCardRecord(data)
}

// GetForUpdate fetches a card record with pessimistic locking.
// This MUST be called within a transaction.
func (r *CardRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.CardRecord, error) {
	query := `SELECT data FROM card_records WHERE addr = $1 FOR UPDATE`

	var data []byte
	err := tx.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card record for update: %w", err)
	}
	return decodeCardRecord(data)
}

// Update rewrites a card record's packed data within a transaction.
func (r *CardRepo) Update(ctx context.Context, tx pgx.Tx, addr domain.Address, card *domain.CardRecord) error {
	query := `UPDATE card_records SET data = $1, updated_at = NOW() WHERE addr = $2`

	tag, err := tx.Exec(ctx, query, card.Pack(), addr[:])
	if err != nil {
		return fmt.Errorf("update card record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card record not found: %s", addr)
	}
	return nil
}

// Rewrite replaces a card record regardless of what the row held before,
// creating it if the repair path runs against a missing row.
func (r *CardRepo) Rewrite(ctx context.Context, tx pgx.Tx, addr domain.Address, card *domain.CardRecord) error {
	query := `INSERT INTO card_records (addr, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (addr) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	_, err := tx.Exec(ctx, query, addr[:], card.Pack())
	if err != nil {
		return fmt.Errorf("rewrite card record: %w", err)
	}
	return nil
}

func decodeCardRecord(data []byte) (*domain.CardRecord, error) {
	card, err := domain.UnpackCardRecord(data)
	if err != nil {
		return nil, fmt.Errorf("decode card record: %w", err)
	}
	return card, nil
}
