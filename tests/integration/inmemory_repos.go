package integration

import (
	"context"
	"fmt"
	"sync"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The in-memory stores keep the packed record bytes, the same shape the
// postgres repos persist, so every read round-trips through the codec.

// --- In-Memory Vault Repo ---

type inMemoryVaultRepo struct {
	mu      sync.RWMutex
	data    map[domain.Address][]byte
	reserve map[domain.Address]int64
}

func newInMemoryVaultRepo() *inMemoryVaultRepo {
	return &inMemoryVaultRepo{
		data:    make(map[domain.Address][]byte),
		reserve: make(map[domain.Address]int64),
	}
}

func (r *inMemoryVaultRepo) Create(_ context.Context, _ pgx.Tx, addr domain.Address, cfg *domain.VaultConfig, reserve int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[addr]; ok {
		return fmt.Errorf("vault record %s already exists", addr)
	}
	r.data[addr] = cfg.Pack()
	r.reserve[addr] = reserve
	return nil
}

func (r *inMemoryVaultRepo) Get(_ context.Context, addr domain.Address) (*domain.VaultConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.data[addr]
	if !ok {
		return nil, nil
	}
	cfg, err := domain.UnpackVaultConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("decode vault record: %w", err)
	}
	return cfg, nil
}

func (r *inMemoryVaultRepo) GetForUpdate(ctx context.Context, _ pgx.Tx, addr domain.Address) (*domain.VaultConfig, error) {
	return r.Get(ctx, addr)
}

func (r *inMemoryVaultRepo) Update(_ context.Context, _ pgx.Tx, addr domain.Address, cfg *domain.VaultConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[addr]; !ok {
		return fmt.Errorf("vault record %s not found", addr)
	}
	r.data[addr] = cfg.Pack()
	return nil
}

func (r *inMemoryVaultRepo) GetRawForUpdate(_ context.Context, _ pgx.Tx, addr domain.Address) (*domain.StoredRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.data[addr]
	if !ok {
		return nil, nil
	}
	data := make([]byte, len(raw))
	copy(data, raw)
	return &domain.StoredRecord{Address: addr, Data: data, Reserve: r.reserve[addr]}, nil
}

func (r *inMemoryVaultRepo) Rewrite(_ context.Context, _ pgx.Tx, addr domain.Address, data []byte, reserve int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[addr]; !ok {
		return fmt.Errorf("vault record %s not found", addr)
	}
	r.data[addr] = data
	r.reserve[addr] = reserve
	return nil
}

// --- In-Memory Card Repo ---

type inMemoryCardRepo struct {
	mu   sync.RWMutex
	data map[domain.Address][]byte
}

func newInMemoryCardRepo() *inMemoryCardRepo {
	return &inMemoryCardRepo{data: make(map[domain.Address][]byte)}
}

func (r *inMemoryCardRepo) Create(_ context.Context, _ pgx.Tx, addr domain.Address, card *domain.CardRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[addr]; ok {
		return fmt.Errorf("card record %s already exists", addr)
	}
	r.data[addr] = card.Pack()
	return nil
}

func (r *inMemoryCardRepo) Get(_ context.Context, addr domain.Address) (*domain.CardRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.data[addr]
	if !ok {
		return nil, nil
	}
	card, err := domain.UnpackCardRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("decode card record: %w", err)
	}
	return card, nil
}

func (r *inMemoryCardRepo) GetForUpdate(ctx context.Context, _ pgx.Tx, addr domain.Address) (*domain.CardRecord, error) {
	return r.Get(ctx, addr)
}

func (r *inMemoryCardRepo) Update(_ context.Context, _ pgx.Tx, addr domain.Address, card *domain.CardRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[addr]; !ok {
		return fmt.Errorf("card record %s not found", addr)
	}
	r.data[addr] = card.Pack()
	return nil
}

func (r *inMemoryCardRepo) Rewrite(_ context.Context, _ pgx.Tx, addr domain.Address, card *domain.CardRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[addr] = card.Pack()
	return nil
}

// --- In-Memory Session Repo ---

type inMemorySessionRepo struct {
	mu   sync.RWMutex
	full map[domain.Address][]byte
	lite map[domain.Address][]byte
}

func newInMemorySessionRepo() *inMemorySessionRepo {
	return &inMemorySessionRepo{
		full: make(map[domain.Address][]byte),
		lite: make(map[domain.Address][]byte),
	}
}

func (r *inMemorySessionRepo) CreateFull(_ context.Context, _ pgx.Tx, addr domain.Address, s *domain.PackSession) error {
	raw, err := s.Pack()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.full[addr]; ok {
		return fmt.Errorf("session %s already exists", addr)
	}
	r.full[addr] = raw
	return nil
}

func (r *inMemorySessionRepo) GetFull(_ context.Context, addr domain.Address) (*domain.PackSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.full[addr]
	if !ok {
		return nil, nil
	}
	return domain.UnpackPackSession(raw)
}

func (r *inMemorySessionRepo) GetFullForUpdate(ctx context.Context, _ pgx.Tx, addr domain.Address) (*domain.PackSession, error) {
	return r.GetFull(ctx, addr)
}

func (r *inMemorySessionRepo) UpdateFull(_ context.Context, _ pgx.Tx, addr domain.Address, s *domain.PackSession) error {
	raw, err := s.Pack()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.full[addr]; !ok {
		return fmt.Errorf("session %s not found", addr)
	}
	r.full[addr] = raw
	return nil
}

func (r *inMemorySessionRepo) DeleteFull(_ context.Context, _ pgx.Tx, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.full, addr)
	return nil
}

func (r *inMemorySessionRepo) CreateLite(_ context.Context, _ pgx.Tx, addr domain.Address, s *domain.PackSessionLite) error {
	raw, err := s.Pack()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lite[addr]; ok {
		return fmt.Errorf("session %s already exists", addr)
	}
	r.lite[addr] = raw
	return nil
}

func (r *inMemorySessionRepo) GetLite(_ context.Context, addr domain.Address) (*domain.PackSessionLite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.lite[addr]
	if !ok {
		return nil, nil
	}
	return domain.UnpackPackSessionLite(raw)
}

func (r *inMemorySessionRepo) GetLiteForUpdate(ctx context.Context, _ pgx.Tx, addr domain.Address) (*domain.PackSessionLite, error) {
	return r.GetLite(ctx, addr)
}

func (r *inMemorySessionRepo) UpdateLite(_ context.Context, _ pgx.Tx, addr domain.Address, s *domain.PackSessionLite) error {
	raw, err := s.Pack()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lite[addr]; !ok {
		return fmt.Errorf("session %s not found", addr)
	}
	r.lite[addr] = raw
	return nil
}

func (r *inMemorySessionRepo) DeleteLite(_ context.Context, _ pgx.Tx, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lite, addr)
	return nil
}

// --- In-Memory Listing Repo ---

type inMemoryListingRepo struct {
	mu   sync.RWMutex
	data map[domain.Address][]byte
}

func newInMemoryListingRepo() *inMemoryListingRepo {
	return &inMemoryListingRepo{data: make(map[domain.Address][]byte)}
}

func (r *inMemoryListingRepo) Create(_ context.Context, _ pgx.Tx, addr domain.Address, l *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[addr]; ok {
		return fmt.Errorf("listing %s already exists", addr)
	}
	r.data[addr] = l.Pack()
	return nil
}

func (r *inMemoryListingRepo) Get(_ context.Context, addr domain.Address) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.data[addr]
	if !ok {
		return nil, nil
	}
	return domain.UnpackListing(raw)
}

func (r *inMemoryListingRepo) GetForUpdate(ctx context.Context, _ pgx.Tx, addr domain.Address) (*domain.Listing, error) {
	return r.Get(ctx, addr)
}

func (r *inMemoryListingRepo) Update(_ context.Context, _ pgx.Tx, addr domain.Address, l *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[addr]; !ok {
		return fmt.Errorf("listing %s not found", addr)
	}
	r.data[addr] = l.Pack()
	return nil
}

func (r *inMemoryListingRepo) Delete(_ context.Context, _ pgx.Tx, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, addr)
	return nil
}

// --- In-Memory Payment Ledger ---

type inMemoryLedger struct {
	mu       sync.Mutex
	native   map[domain.Address]uint64
	accounts map[domain.Address]map[domain.Address]uint64 // mint -> owner -> balance
	mints    map[domain.Address]*domain.FungibleMint
}

func newInMemoryLedger() *inMemoryLedger {
	return &inMemoryLedger{
		native:   make(map[domain.Address]uint64),
		accounts: make(map[domain.Address]map[domain.Address]uint64),
		mints:    make(map[domain.Address]*domain.FungibleMint),
	}
}

func (l *inMemoryLedger) creditNative(addr domain.Address, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.native[addr] += amount
}

func (l *inMemoryLedger) nativeBalance(addr domain.Address) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.native[addr]
}

func (l *inMemoryLedger) createMint(mint, authority domain.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mints[mint] = &domain.FungibleMint{Address: mint, Authority: authority}
	l.accounts[mint] = make(map[domain.Address]uint64)
}

func (l *inMemoryLedger) tokenBalance(mint, owner domain.Address) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.accounts[mint][owner]
}

func (l *inMemoryLedger) createTokenAccount(mint, owner domain.Address, balance uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.accounts[mint] == nil {
		l.accounts[mint] = make(map[domain.Address]uint64)
	}
	l.accounts[mint][owner] = balance
}

func (l *inMemoryLedger) TransferNative(_ context.Context, _ pgx.Tx, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.native[from] < amount {
		return apperror.ErrInsufficientFunds()
	}
	l.native[from] -= amount
	l.native[to] += amount
	return nil
}

func (l *inMemoryLedger) TransferFungible(_ context.Context, _ pgx.Tx, mint, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	accounts := l.accounts[mint]
	if accounts == nil {
		return apperror.ErrMissingTokenAccount()
	}
	if _, ok := accounts[to]; !ok {
		return apperror.ErrMissingTokenAccount()
	}
	if accounts[from] < amount {
		return apperror.ErrInsufficientFunds()
	}
	accounts[from] -= amount
	accounts[to] += amount
	return nil
}

func (l *inMemoryLedger) MintFungible(_ context.Context, _ pgx.Tx, mint, authority, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.mints[mint]
	if !ok || !m.Authority.Equal(authority) {
		return apperror.ErrMintMismatch()
	}
	m.Supply += amount
	if l.accounts[mint] == nil {
		l.accounts[mint] = make(map[domain.Address]uint64)
	}
	l.accounts[mint][to] += amount
	return nil
}

func (l *inMemoryLedger) GetMint(_ context.Context, _ pgx.Tx, mint domain.Address) (*domain.FungibleMint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.mints[mint]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (l *inMemoryLedger) GetTokenAccount(_ context.Context, _ pgx.Tx, mint, owner domain.Address) (*domain.TokenAccount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	accounts := l.accounts[mint]
	if accounts == nil {
		return nil, nil
	}
	balance, ok := accounts[owner]
	if !ok {
		return nil, nil
	}
	return &domain.TokenAccount{Mint: mint, Owner: owner, Balance: balance}, nil
}

// --- In-Memory Custody ---

type inMemoryCustody struct {
	mu      sync.Mutex
	holders map[domain.Address]domain.Address
	burned  map[domain.Address]bool
}

func newInMemoryCustody() *inMemoryCustody {
	return &inMemoryCustody{
		holders: make(map[domain.Address]domain.Address),
		burned:  make(map[domain.Address]bool),
	}
}

func (c *inMemoryCustody) seed(asset, holder domain.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holders[asset] = holder
}

func (c *inMemoryCustody) Transfer(_ context.Context, _ pgx.Tx, asset, from, to domain.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	holder, ok := c.holders[asset]
	if !ok || c.burned[asset] || !holder.Equal(from) {
		return fmt.Errorf("asset %s not held by %s", asset, from)
	}
	c.holders[asset] = to
	return nil
}

func (c *inMemoryCustody) Burn(_ context.Context, _ pgx.Tx, asset, holder domain.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.holders[asset]
	if !ok || c.burned[asset] || !current.Equal(holder) {
		return fmt.Errorf("asset %s not held by %s", asset, holder)
	}
	c.burned[asset] = true
	return nil
}

func (c *inMemoryCustody) Holder(_ context.Context, _ pgx.Tx, asset domain.Address) (domain.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	holder, ok := c.holders[asset]
	if !ok || c.burned[asset] {
		return domain.Address{}, fmt.Errorf("asset %s not found", asset)
	}
	return holder, nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions behind one mutex, standing in
// for the row locks the postgres repos take with FOR UPDATE.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(_ context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	tx := &memTx{}
	tx.release = func() { t.mu.Unlock() }
	return tx, nil
}

// memTx is a no-op pgx.Tx that releases the transactor lock exactly once,
// whether the caller commits, rolls back, or both.
type memTx struct {
	once    sync.Once
	release func()
}

func (t *memTx) done() {
	t.once.Do(t.release)
}

func (t *memTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) Commit(_ context.Context) error          { t.done(); return nil }
func (t *memTx) Rollback(_ context.Context) error        { t.done(); return nil }
func (t *memTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                             { return pgx.LargeObjects{} }
func (t *memTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }
