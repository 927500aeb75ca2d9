package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

// VaultRepo implements ports.VaultRepository. Records persist as packed byte
// blobs keyed by derived address, with the reserve balance alongside so the
// storage migration can top it up in the same row.
type VaultRepo struct {
	pool Pool
}

// NewVaultRepo creates a new VaultRepo.
func NewVaultRepo(pool Pool) *VaultRepo {
	return &VaultRepo{pool: pool}
}

// Create inserts a vault record within a database transaction.
func (r *VaultRepo) Create(ctx context.Context, tx pgx.Tx, addr domain.Address, cfg *domain.VaultConfig, reserve int64) error {
	query := `INSERT INTO vault_records (addr, data, reserve, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())`

	_, err := tx.Exec(ctx, query, addr[:], cfg.Pack(), reserve)
	if err != nil {
		return fmt.Errorf("insert vault record: %w", err)
	}
	return nil
}

// Get fetches a vault record by address (without locking).
func (r *VaultRepo) Get(ctx context.Context, addr domain.Address) (*domain.VaultConfig, error) {
	query := `SELECT data FROM vault_records WHERE addr = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vault record: %w", err)
	}
	return decodeVaultConfig(data)
}

// GetForUpdate fetches a vault record with pessimistic locking.
// This MUST be called within a transaction.
func (r *VaultRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.VaultConfig, error) {
	query := `SELECT data FROM vault_records WHERE addr = $1 FOR UPDATE`

	var data []byte
	err := tx.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vault record for update: %w", err)
	}
	return decodeVaultConfig(data)
}

// Update rewrites a vault record's packed data within a transaction.
func (r *VaultRepo) Update(ctx context.Context, tx pgx.Tx, addr domain.Address, cfg *domain.VaultConfig) error {
	query := `UPDATE vault_records SET data = $1, updated_at = NOW() WHERE addr = $2`

	tag, err := tx.Exec(ctx, query, cfg.Pack(), addr[:])
	if err != nil {
		return fmt.Errorf("update vault record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vault record not found: %s", addr)
	}
	return nil
}

// GetRawForUpdate fetches the stored bytes and reserve without decoding. The
// storage migration reads legacy layouts through it.
func (r *VaultRepo) GetRawForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.StoredRecord, error) {
	query := `SELECT data, reserve FROM vault_records WHERE addr = $1 FOR UPDATE`

	rec := &domain.StoredRecord{Address: addr}
	err := tx.QueryRow(ctx, query, addr[:]).Scan(&rec.Data, &rec.Reserve)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw vault record: %w", err)
	}
	return rec, nil
}

// Rewrite replaces the stored bytes and reserve wholesale, bypassing the
// strict codec.
func (r *VaultRepo) Rewrite(ctx context.Context, tx pgx.Tx, addr domain.Address, data []byte, reserve int64) error {
	query := `UPDATE vault_records SET data = $1, reserve = $2, updated_at = NOW() WHERE addr = $3`

	tag, err := tx.Exec(ctx, query, data, reserve, addr[:])
	if err != nil {
		return fmt.Errorf("rewrite vault record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vault record not found: %s", addr)
	}
	return nil
}

func decodeVaultConfig(data []byte) (*domain.VaultConfig, error) {
	cfg, err := domain.UnpackVaultConfig(data)
	if err != nil {
		return nil, fmt.Errorf("decode vault record: %w", err)
	}
	return cfg, nil
}
