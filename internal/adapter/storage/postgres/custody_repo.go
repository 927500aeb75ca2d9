package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
)

// CustodyRepo implements ports.CustodyService over the assets table. Each
// asset row tracks its current holder; a burn is terminal.
type CustodyRepo struct {
	pool Pool
}

// NewCustodyRepo creates a new CustodyRepo.
func NewCustodyRepo(pool Pool) *CustodyRepo {
	return &CustodyRepo{pool: pool}
}

// Transfer moves an asset from one holder to another. The conditional update
// doubles as the possession check: zero rows means the asset is not held by
// the claimed sender.
func (r *CustodyRepo) Transfer(ctx context.Context, tx pgx.Tx, asset, from, to domain.Address) error {
	query := `UPDATE assets SET holder = $1, updated_at = NOW()
		WHERE addr = $2 AND holder = $3 AND NOT burned`

	tag, err := tx.Exec(ctx, query, to[:], asset[:], from[:])
	if err != nil {
		return fmt.Errorf("transfer asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset %s not held by %s", asset, from)
	}
	return nil
}

// Burn permanently destroys an asset held by the given holder.
func (r *CustodyRepo) Burn(ctx context.Context, tx pgx.Tx, asset, holder domain.Address) error {
	query := `UPDATE assets SET burned = TRUE, updated_at = NOW()
		WHERE addr = $1 AND holder = $2 AND NOT burned`

	tag, err := tx.Exec(ctx, query, asset[:], holder[:])
	if err != nil {
		return fmt.Errorf("burn asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset %s not held by %s", asset, holder)
	}
	return nil
}

// Holder reports the current holder of an asset, locking the row for the
// remainder of the transaction.
func (r *CustodyRepo) Holder(ctx context.Context, tx pgx.Tx, asset domain.Address) (domain.Address, error) {
	query := `SELECT holder FROM assets WHERE addr = $1 AND NOT burned FOR UPDATE`

	var holder domain.Address
	var raw []byte
	err := tx.QueryRow(ctx, query, asset[:]).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holder, fmt.Errorf("asset %s not found", asset)
		}
		return holder, fmt.Errorf("get asset holder: %w", err)
	}
	copy(holder[:], raw)
	return holder, nil
}
