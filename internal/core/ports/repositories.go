package ports

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

// VaultRepository defines persistence operations for vault configuration
// records. Methods accepting pgx.Tx run inside transaction blocks with
// pessimistic locking.
type VaultRepository interface {
	Create(ctx context.Context, tx pgx.Tx, addr domain.Address, cfg *domain.VaultConfig, reserve int64) error
	Get(ctx context.Context, addr domain.Address) (*domain.VaultConfig, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.VaultConfig, error)
	Update(ctx context.Context, tx pgx.Tx, addr domain.Address, cfg *domain.VaultConfig) error

	// Raw access for the storage-layout migration: the stored bytes are
	// rewritten wholesale, bypassing the strict codec.
	GetRawForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.StoredRecord, error)
	Rewrite(ctx context.Context, tx pgx.Tx, addr domain.Address, data []byte, reserve int64) error
}

// CardRepository defines persistence operations for card custody records.
type CardRepository interface {
	Create(ctx context.Context, tx pgx.Tx, addr domain.Address, card *domain.CardRecord) error
	Get(ctx context.Context, addr domain.Address) (*domain.CardRecord, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.CardRecord, error)
	Update(ctx context.Context, tx pgx.Tx, addr domain.Address, card *domain.CardRecord) error
	// Rewrite replaces a card record even when the stored bytes fail strict
	// decoding. Admin repair paths use it to rebuild corrupt records.
	Rewrite(ctx context.Context, tx pgx.Tx, addr domain.Address, card *domain.CardRecord) error
}

// SessionRepository defines persistence for both session shapes, keyed by the
// derived session address.
type SessionRepository interface {
	CreateFull(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSession) error
	GetFull(ctx context.Context, addr domain.Address) (*domain.PackSession, error)
	GetFullForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.PackSession, error)
	UpdateFull(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSession) error
	DeleteFull(ctx context.Context, tx pgx.Tx, addr domain.Address) error

	CreateLite(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSessionLite) error
	GetLite(ctx context.Context, addr domain.Address) (*domain.PackSessionLite, error)
	GetLiteForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.PackSessionLite, error)
	UpdateLite(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSessionLite) error
	DeleteLite(ctx context.Context, tx pgx.Tx, addr domain.Address) error
}

// ListingRepository defines persistence for marketplace listings.
type ListingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, addr domain.Address, l *domain.Listing) error
	Get(ctx context.Context, addr domain.Address) (*domain.Listing, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.Listing, error)
	Update(ctx context.Context, tx pgx.Tx, addr domain.Address, l *domain.Listing) error
	Delete(ctx context.Context, tx pgx.Tx, addr domain.Address) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
