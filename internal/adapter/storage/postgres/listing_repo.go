package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

// ListingRepo implements ports.ListingRepository.
type ListingRepo struct {
	pool Pool
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(pool Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

// Create inserts a listing within a database transaction.
func (r *ListingRepo) Create(ctx context.Context, tx pgx.Tx, addr domain.Address, l *domain.Listing) error {
	query := `INSERT INTO listings (addr, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())`

	_, err := tx.Exec(ctx, query, addr[:], l.Pack())
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// Get fetches a listing by address (without locking).
func (r *ListingRepo) Get(ctx context.Context, addr domain.Address) (*domain.Listing, error) {
	query := `SELECT data FROM listings WHERE addr = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return decodeListing(data)
}

// GetForUpdate fetches a listing with pessimistic locking.
// This MUST be called within a transaction.
func (r *ListingRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.Listing, error) {
	query := `SELECT data FROM listings WHERE addr = $1 FOR UPDATE`

	var data []byte
	err := tx.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing for update: %w", err)
	}
	return decodeListing(data)
}

// Update rewrites a listing within a transaction.
func (r *ListingRepo) Update(ctx context.Context, tx pgx.Tx, addr domain.Address, l *domain.Listing) error {
	query := `UPDATE listings SET data = $1, updated_at = NOW() WHERE addr = $2`

	tag, err := tx.Exec(ctx, query, l.Pack(), addr[:])
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("listing not found: %s", addr)
	}
	return nil
}

// Delete removes a listing row within a transaction.
func (r *ListingRepo) Delete(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	query := `DELETE FROM listings WHERE addr = $1`

	if _, err := tx.Exec(ctx, query, addr[:]); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}

func decodeListing(data []byte) (*domain.Listing, error) {
	l, err := domain.UnpackListing(data)
	if err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	return l, nil
}
