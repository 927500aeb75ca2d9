package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

// SessionRepo implements ports.SessionRepository. The two session shapes live
// in separate tables so a vault can carry both generations at once.
type SessionRepo struct {
	pool Pool
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(pool Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// CreateFull inserts a full-pack session within a database transaction.
func (r *SessionRepo) CreateFull(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSession) error {
	data, err := s.Pack()
	if err != nil {
		return fmt.Errorf("pack session: %w", err)
	}
	query := `INSERT INTO pack_sessions (addr, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())`

	if _, err := tx.Exec(ctx, query, addr[:], data); err != nil {
		return fmt.Errorf("insert pack session: %w", err)
	}
	return nil
}

// GetFull fetches a full-pack session by address (without locking).
func (r *SessionRepo) GetFull(ctx context.Context, addr domain.Address) (*domain.PackSession, error) {
	query := `SELECT data FROM pack_sessions WHERE addr = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pack session: %w", err)
	}
	return decodePackSession(data)
}

// GetFullForUpdate fetches a full-pack session with pessimistic locking.
// This MUST be called within a transaction.
func (r *SessionRepo) GetFullForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.PackSession, error) {
	query := `SELECT data FROM pack_sessions WHERE addr = $1 FOR UPDATE`

	var data []byte
	err := tx.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pack session for update: %w", err)
	}
	return decodePackSession(data)
}

// UpdateFull rewrites a full-pack session within a transaction.
func (r *SessionRepo) UpdateFull(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSession) error {
	data, err := s.Pack()
	if err != nil {
		return fmt.Errorf("pack session: %w", err)
	}
	query := `UPDATE pack_sessions SET data = $1, updated_at = NOW() WHERE addr = $2`

	tag, err := tx.Exec(ctx, query, data, addr[:])
	if err != nil {
		return fmt.Errorf("update pack session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pack session not found: %s", addr)
	}
	return nil
}

// DeleteFull removes a full-pack session row within a transaction.
func (r *SessionRepo) DeleteFull(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	query := `DELETE FROM pack_sessions WHERE addr = $1`

	if _, err := tx.Exec(ctx, query, addr[:]); err != nil {
		return fmt.Errorf("delete pack session: %w", err)
	}
	return nil
}

// CreateLite inserts a lightweight session within a database transaction.
func (r *SessionRepo) CreateLite(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSessionLite) error {
	data, err := s.Pack()
	if err != nil {
		return fmt.Errorf("pack lite session: %w", err)
	}
	query := `INSERT INTO pack_sessions_lite (addr, data, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())`

	if _, err := tx.Exec(ctx, query, addr[:], data); err != nil {
		return fmt.Errorf("insert lite session: %w", err)
	}
	return nil
}

// GetLite fetches a lightweight session by address (without locking).
func (r *SessionRepo) GetLite(ctx context.Context, addr domain.Address) (*domain.PackSessionLite, error) {
	query := `SELECT data FROM pack_sessions_lite WHERE addr = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lite session: %w", err)
	}
	return decodePackSessionLite(data)
}

// GetLiteForUpdate fetches a lightweight session with pessimistic locking.
// This MUST be called within a transaction.
func (r *SessionRepo) GetLiteForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.PackSessionLite, error) {
	query := `SELECT data FROM pack_sessions_lite WHERE addr = $1 FOR UPDATE`

	var data []byte
	err := tx.QueryRow(ctx, query, addr[:]).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lite session for update: %w", err)
	}
	return decodePackSessionLite(data)
}

// UpdateLite rewrites a lightweight session within a transaction.
func (r *SessionRepo) UpdateLite(ctx context.Context, tx pgx.Tx, addr domain.Address, s *domain.PackSessionLite) error {
	data, err := s.Pack()
	if err != nil {
		return fmt.Errorf("pack lite session: %w", err)
	}
	query := `UPDATE pack_sessions_lite SET data = $1, updated_at = NOW() WHERE addr = $2`

	tag, err := tx.Exec(ctx, query, data, addr[:])
	if err != nil {
		return fmt.Errorf("update lite session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lite session not found: %s", addr)
	}
	return nil
}

// DeleteLite removes a lightweight session row within a transaction.
func (r *SessionRepo) DeleteLite(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	query := `DELETE FROM pack_sessions_lite WHERE addr = $1`

	if _, err := tx.Exec(ctx, query, addr[:]); err != nil {
		return fmt.Errorf("delete lite session: %w", err)
	}
	return nil
}

func decodePackSession(data []byte) (*domain.PackSession, error) {
	s, err := domain.UnpackPackSession(data)
	if err != nil {
		return nil, fmt.Errorf("decode pack session: %w", err)
	}
	return s, nil
}

func decodePackSessionLite(data []byte) (*domain.PackSessionLite, error) {
	s, err := domain.UnpackPackSessionLite(data)
	if err != nil {
		return nil, fmt.Errorf("decode lite session: %w", err)
	}
	return s, nil
}
