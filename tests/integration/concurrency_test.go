package integration

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fireSigned sends one HMAC-signed request from inside a worker goroutine.
// It builds everything by hand because testify's require must not run off
// the test goroutine.
func fireSigned(serverURL, path string, body []byte, nonce string) (int, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	canonical := fmt.Sprintf("POST|%s|%s|%s|%s", path, timestamp, nonce, string(body))
	mac := hmac.New(sha256.New, []byte(testSecretKey))
	mac.Write([]byte(canonical))
	signature := hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequest(http.MethodPost, serverURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Backend-Access-Key", testAccessKey)
	req.Header.Set("X-Signature", signature)
	req.Header.Set("X-Timestamp", timestamp)
	req.Header.Set("X-Nonce", nonce)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body)
	return resp.StatusCode, nil
}

// TestConcurrentOpenPack_SingleCharge fires concurrent opens for one user
// funded for exactly one pack. Row locking on the session record must let
// exactly one open through; the rest hit the pending-session conflict and
// the user is charged once.
func TestConcurrentOpenPack_SingleCharge(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.login(t)
	admin := hexAddr(0xC0)
	user := addrOf(0x40)
	vault, _ := app.initVault(t, token, admin)

	app.ledger.creditNative(user, packPriceNative)

	concurrency := 20
	var wg sync.WaitGroup
	var opened atomic.Int64
	var conflicts atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body, _ := json.Marshal(map[string]interface{}{
				"vault":           vault,
				"user":            user.String(),
				"currency":        "NATIVE",
				"commitment_hash": hexAddr(byte(idx + 1)),
			})
			nonce := fmt.Sprintf("open-race-%d-%d", idx, time.Now().UnixNano())
			status, err := fireSigned(app.server.URL, "/api/v1/packs/open", body, nonce)
			if err != nil {
				return
			}
			switch status {
			case http.StatusCreated:
				opened.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), opened.Load())
	assert.Equal(t, int64(concurrency-1), conflicts.Load())
	assert.Equal(t, uint64(0), app.ledger.nativeBalance(user))
}

// TestConcurrentFillListing_SingleWinner races buyers for one listing.
// Exactly one fill settles; the seller is paid once.
func TestConcurrentFillListing_SingleWinner(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.login(t)
	admin := hexAddr(0xC1)
	seller := addrOf(0x41)
	asset := addrOf(0x42)
	vault, authority := app.initVault(t, token, admin)

	app.custody.seed(asset, seller)

	price := uint64(10_000)
	listResp := app.signedPost(t, "/api/v1/market/listings", map[string]interface{}{
		"vault":       vault,
		"seller":      seller.String(),
		"asset":       asset.String(),
		"price":       price,
		"template_id": 3,
		"rarity":      uint8(domain.RarityRare),
	})
	require.Equal(t, http.StatusCreated, listResp.StatusCode)
	listResp.Body.Close()

	concurrency := 20
	buyers := make([]domain.Address, concurrency)
	for i := range buyers {
		buyers[i] = addrOf(byte(0x50 + i))
		app.ledger.creditNative(buyers[i], price)
	}

	var wg sync.WaitGroup
	var filled atomic.Int64
	var conflicts atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body, _ := json.Marshal(map[string]interface{}{
				"vault": vault,
				"buyer": buyers[idx].String(),
				"asset": asset.String(),
			})
			nonce := fmt.Sprintf("fill-race-%d-%d", idx, time.Now().UnixNano())
			status, err := fireSigned(app.server.URL, "/api/v1/market/listings/fill", body, nonce)
			if err != nil {
				return
			}
			switch status {
			case http.StatusOK:
				filled.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), filled.Load())
	assert.Equal(t, int64(concurrency-1), conflicts.Load())

	// fee = 250, seller proceed = 9_750, and exactly one buyer paid.
	authorityAddr, err := domain.ParseAddress(authority)
	require.NoError(t, err)
	assert.Equal(t, uint64(9_750), app.ledger.nativeBalance(seller))
	assert.Equal(t, uint64(250), app.ledger.nativeBalance(authorityAddr))

	var spent int
	for _, b := range buyers {
		if app.ledger.nativeBalance(b) == 0 {
			spent++
		}
	}
	assert.Equal(t, 1, spent)
}

// TestConcurrentSettle_ClaimVsSellback races a claim against a sellback on
// the same pending session. The session settles exactly once.
func TestConcurrentSettle_ClaimVsSellback(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.login(t)
	admin := hexAddr(0xC2)
	user := addrOf(0x43)
	vault, _ := app.initVault(t, token, admin)

	app.ledger.creditNative(user, packPriceNative)
	app.openPack(t, vault, user.String(), nil)

	body, _ := json.Marshal(map[string]interface{}{
		"vault": vault,
		"user":  user.String(),
	})

	var wg sync.WaitGroup
	var settled atomic.Int64
	for _, path := range []string{"/api/v1/packs/claim", "/api/v1/packs/sellback"} {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			nonce := fmt.Sprintf("settle-race-%s-%d", p, time.Now().UnixNano())
			status, err := fireSigned(app.server.URL, p, body, nonce)
			if err != nil {
				return
			}
			if status == http.StatusOK {
				settled.Add(1)
			}
		}(path)
	}
	wg.Wait()

	assert.Equal(t, int64(1), settled.Load())

	view := app.signedGet(t, "/api/v1/vaults/"+vault+"/sessions-lite/"+user.String())
	require.Equal(t, http.StatusOK, view.StatusCode)
	sess := decodeData(t, view)
	assert.Contains(t, []interface{}{"ACCEPTED", "REJECTED"}, sess["state"])
}
