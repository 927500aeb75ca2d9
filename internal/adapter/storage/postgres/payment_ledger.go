package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

// PaymentLedgerRepo implements ports.PaymentLedger on top of native-balance
// and fungible-balance tables. Every method runs inside the caller's
// transaction so a failed settlement rolls the payment legs back too.
type PaymentLedgerRepo struct {
	pool Pool
}

// NewPaymentLedgerRepo creates a new PaymentLedgerRepo.
func NewPaymentLedgerRepo(pool Pool) *PaymentLedgerRepo {
	return &PaymentLedgerRepo{pool: pool}
}

// TransferNative debits the native balance of one account and credits
// another. The debit uses a conditional update so a concurrent spend of the
// same balance cannot overdraw it.
func (r *PaymentLedgerRepo) TransferNative(ctx context.Context, tx pgx.Tx, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if amount > math.MaxInt64 {
		return apperror.ErrOverflow()
	}

	debit := `UPDATE native_accounts SET balance = balance - $1, updated_at = NOW()
		WHERE addr = $2 AND balance >= $1`
	tag, err := tx.Exec(ctx, debit, int64(amount), from[:])
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("debit native balance: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrInsufficientFunds()
	}

	credit := `INSERT INTO native_accounts (addr, balance, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (addr) DO UPDATE SET balance = native_accounts.balance + $2, updated_at = NOW()`
	if _, err := tx.Exec(ctx, credit, to[:], int64(amount)); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("credit native balance: %w", err))
	}
	return nil
}

// TransferFungible moves fungible balance between two holders of a mint.
// The recipient must already hold a token account for the mint.
func (r *PaymentLedgerRepo) TransferFungible(ctx context.Context, tx pgx.Tx, mint, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if amount > math.MaxInt64 {
		return apperror.ErrOverflow()
	}

	var exists bool
	check := `SELECT EXISTS (SELECT 1 FROM token_accounts WHERE mint = $1 AND owner = $2)`
	if err := tx.QueryRow(ctx, check, mint[:], to[:]).Scan(&exists); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("check token account: %w", err))
	}
	if !exists {
		return apperror.ErrMissingTokenAccount()
	}

	debit := `UPDATE token_accounts SET balance = balance - $1, updated_at = NOW()
		WHERE mint = $2 AND owner = $3 AND balance >= $1`
	tag, err := tx.Exec(ctx, debit, int64(amount), mint[:], from[:])
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("debit fungible balance: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrInsufficientFunds()
	}

	credit := `UPDATE token_accounts SET balance = balance + $1, updated_at = NOW()
		WHERE mint = $2 AND owner = $3`
	if _, err := tx.Exec(ctx, credit, int64(amount), mint[:], to[:]); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("credit fungible balance: %w", err))
	}
	return nil
}

// MintFungible issues new fungible supply to a holder. The authority must
// match the mint's configured authority.
func (r *PaymentLedgerRepo) MintFungible(ctx context.Context, tx pgx.Tx, mint, authority, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if amount > math.MaxInt64 {
		return apperror.ErrOverflow()
	}

	grow := `UPDATE fungible_mints SET supply = supply + $1, updated_at = NOW()
		WHERE addr = $2 AND authority = $3`
	tag, err := tx.Exec(ctx, grow, int64(amount), mint[:], authority[:])
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("grow mint supply: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrMintMismatch()
	}

	credit := `INSERT INTO token_accounts (mint, owner, balance, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (mint, owner) DO UPDATE SET balance = token_accounts.balance + $3, updated_at = NOW()`
	if _, err := tx.Exec(ctx, credit, mint[:], to[:], int64(amount)); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("credit minted balance: %w", err))
	}
	return nil
}

// GetMint fetches a fungible mint by address. Returns (nil, nil) when the
// mint does not exist.
func (r *PaymentLedgerRepo) GetMint(ctx context.Context, tx pgx.Tx, mint domain.Address) (*domain.FungibleMint, error) {
	query := `SELECT addr, authority, supply FROM fungible_mints WHERE addr = $1`

	m := &domain.FungibleMint{}
	var addr, authority []byte
	var supply int64
	err := tx.QueryRow(ctx, query, mint[:]).Scan(&addr, &authority, &supply)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fungible mint: %w", err)
	}
	copy(m.Address[:], addr)
	copy(m.Authority[:], authority)
	m.Supply = uint64(supply)
	return m, nil
}

// GetTokenAccount fetches a holder's token account for a mint. Returns
// (nil, nil) when no account exists.
func (r *PaymentLedgerRepo) GetTokenAccount(ctx context.Context, tx pgx.Tx, mint, owner domain.Address) (*domain.TokenAccount, error) {
	query := `SELECT mint, owner, balance FROM token_accounts WHERE mint = $1 AND owner = $2`

	a := &domain.TokenAccount{}
	var m, o []byte
	var balance int64
	err := tx.QueryRow(ctx, query, mint[:], owner[:]).Scan(&m, &o, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token account: %w", err)
	}
	copy(a.Mint[:], m)
	copy(a.Owner[:], o)
	a.Balance = uint64(balance)
	return a, nil
}
