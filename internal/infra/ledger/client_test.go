//go:build unit

package ledger_test

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"beatbox-store/internal/infra"
	"beatbox-store/internal/infra/ledger"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type handlerFunc func(params []json.RawMessage) (any, *rpcError)

type fakeNode struct {
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]handlerFunc
	headers  []http.Header
}

func newFakeNode(t *testing.T) (*fakeNode, *ledger.Client) {
	t.Helper()
	node := &fakeNode{t: t, handlers: map[string]handlerFunc{}}
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)
	client := ledger.NewClient(config.LedgerConfig{RPCURL: srv.URL, AuthToken: "secret", Timeout: time.Second}, nil, nil)
	return node, client
}

func (n *fakeNode) on(method string, h handlerFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[method] = h
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage   `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	require.NoError(n.t, json.NewDecoder(r.Body).Decode(&req))

	n.mu.Lock()
	n.headers = append(n.headers, r.Header.Clone())
	h, ok := n.handlers[req.Method]
	n.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	result, rpcErr := h(req.Params)
	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func mustKey(t *testing.T) solana.PublicKey {
	t.Helper()
	pk, err := solana.NewRandomPublicKey()
	require.NoError(t, err)
	return pk
}

func TestLatestBlockhash(t *testing.T) {
	node, client := newFakeNode(t)
	hash := solana.Hash(mustKey(t))
	node.on("getLatestBlockhash", func(params []json.RawMessage) (any, *rpcError) {
		assert.JSONEq(t, `{"commitment":"finalized"}`, string(params[0]))
		return map[string]any{
			"context": map[string]any{"slot": 10},
			"value":   map[string]any{"blockhash": hash.String(), "lastValidBlockHeight": 150},
		}, nil
	})

	got, err := client.LatestBlockhash(context.Background(), shared.CommitmentFinalized)
	require.NoError(t, err)
	assert.Equal(t, hash, got.Hash)
	assert.Equal(t, uint64(150), got.LastValidBlockHeight)
	assert.Equal(t, "Bearer secret", node.headers[0].Get("Authorization"))
}

func TestTokenDecimals(t *testing.T) {
	node, client := newFakeNode(t)
	known := mustKey(t)
	node.on("getTokenSupply", func(params []json.RawMessage) (any, *rpcError) {
		var mint string
		require.NoError(t, json.Unmarshal(params[0], &mint))
		if mint != known.String() {
			return nil, &rpcError{Code: -32602, Message: "Invalid param: could not find account"}
		}
		return map[string]any{"value": map[string]any{"amount": "1000000", "decimals": 6}}, nil
	})

	decimals, err := client.TokenDecimals(context.Background(), known)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), decimals)

	_, err = client.TokenDecimals(context.Background(), mustKey(t))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func tokenAccountData(mint, owner solana.PublicKey, amount uint64) []byte {
	data := make([]byte, 165)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], amount)
	return data
}

func TestTokenBalance(t *testing.T) {
	node, client := newFakeNode(t)
	existing := mustKey(t)
	mint, owner := mustKey(t), mustKey(t)
	node.on("getAccountInfo", func(params []json.RawMessage) (any, *rpcError) {
		var account string
		require.NoError(t, json.Unmarshal(params[0], &account))
		if account != existing.String() {
			return map[string]any{"context": map[string]any{"slot": 1}, "value": nil}, nil
		}
		return map[string]any{"value": map[string]any{
			"data":       []string{base64.StdEncoding.EncodeToString(tokenAccountData(mint, owner, 7)), "base64"},
			"executable": false,
			"lamports":   2039280,
			"owner":      solana.TokenProgramID.String(),
		}}, nil
	})

	balance, err := client.TokenBalance(context.Background(), existing)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), balance)

	_, err = client.TokenBalance(context.Background(), mustKey(t))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.NotErrorIs(t, err, errs.ErrLedgerUnavailable)
}

func TestSignaturesForAddress(t *testing.T) {
	node, client := newFakeNode(t)
	address := mustKey(t)
	var sig1, sig2, before solana.Signature
	sig1[0], sig2[0], before[0] = 1, 2, 3
	node.on("getSignaturesForAddress", func(params []json.RawMessage) (any, *rpcError) {
		assert.JSONEq(t, `"`+address.String()+`"`, string(params[0]))
		assert.JSONEq(t, `{"limit":1000,"before":"`+before.String()+`","commitment":"confirmed"}`, string(params[1]))
		return []map[string]any{
			{"signature": sig1.String(), "slot": 20, "err": nil, "blockTime": 1700000000, "confirmationStatus": "confirmed"},
			{"signature": sig2.String(), "slot": 19, "err": map[string]any{"InstructionError": []any{0, "Custom"}}, "blockTime": nil},
		}, nil
	})

	records, err := client.SignaturesForAddress(context.Background(), address, shared.SignatureQuery{
		Before:     &before,
		Limit:      1000,
		Commitment: shared.CommitmentConfirmed,
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, sig1, records[0].Signature)
	assert.False(t, records[0].Failed)
	require.NotNil(t, records[0].BlockTime)
	assert.Equal(t, int64(1700000000), records[0].BlockTime.Unix())
	assert.True(t, records[1].Failed)
	assert.Nil(t, records[1].BlockTime)
}

func TestTransaction(t *testing.T) {
	node, client := newFakeNode(t)

	payer, err := solana.NewKeypair()
	require.NoError(t, err)
	tx, err := solana.NewTransaction(payer.PublicKey(), solana.Hash(mustKey(t)),
		solana.SystemTransfer(payer.PublicKey(), mustKey(t), 5000))
	require.NoError(t, err)
	require.NoError(t, solana.PartialSign(tx, payer))
	encoded, err := solana.EncodeBase64(tx)
	require.NoError(t, err)
	lookup := mustKey(t)

	landed := solana.ID(tx)
	failed := solana.Signature{9}
	node.on("getTransaction", func(params []json.RawMessage) (any, *rpcError) {
		var sig string
		require.NoError(t, json.Unmarshal(params[0], &sig))
		assert.JSONEq(t, `{"encoding":"base64","commitment":"confirmed","maxSupportedTransactionVersion":0}`, string(params[1]))
		switch sig {
		case landed.String():
			return map[string]any{
				"slot":        42,
				"transaction": []string{encoded, "base64"},
				"meta": map[string]any{
					"err":             nil,
					"loadedAddresses": map[string]any{"writable": []string{lookup.String()}, "readonly": []string{}},
				},
			}, nil
		case failed.String():
			return map[string]any{
				"slot":        43,
				"transaction": []string{encoded, "base64"},
				"meta":        map[string]any{"err": map[string]any{"InstructionError": []any{0, map[string]int{"Custom": 1}}}},
			}, nil
		default:
			return nil, nil
		}
	})

	rec, err := client.Transaction(context.Background(), landed, shared.CommitmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), rec.Slot)
	assert.False(t, rec.Failed)
	assert.Equal(t, []solana.PublicKey{lookup}, rec.Loaded.Writable)
	require.NoError(t, solana.VerifySignatures(rec.Transaction))
	assert.Equal(t, landed, solana.ID(rec.Transaction))

	rec, err = client.Transaction(context.Background(), failed, shared.CommitmentConfirmed)
	require.NoError(t, err)
	assert.True(t, rec.Failed)
	assert.Contains(t, rec.FailureReason, "InstructionError")

	_, err = client.Transaction(context.Background(), solana.Signature{7}, shared.CommitmentConfirmed)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestSendTransactionAndAirdrop(t *testing.T) {
	node, client := newFakeNode(t)
	payer, err := solana.NewKeypair()
	require.NoError(t, err)
	tx, err := solana.NewTransaction(payer.PublicKey(), solana.Hash(mustKey(t)),
		solana.SystemTransfer(payer.PublicKey(), mustKey(t), 1))
	require.NoError(t, err)
	require.NoError(t, solana.PartialSign(tx, payer))

	node.on("sendTransaction", func(params []json.RawMessage) (any, *rpcError) {
		var encoded string
		require.NoError(t, json.Unmarshal(params[0], &encoded))
		decoded, err := solana.DecodeTransactionBase64(encoded)
		require.NoError(t, err)
		assert.JSONEq(t, `{"encoding":"base64","skipPreflight":false,"preflightCommitment":"confirmed"}`, string(params[1]))
		return solana.ID(decoded).String(), nil
	})
	node.on("requestAirdrop", func(params []json.RawMessage) (any, *rpcError) {
		assert.Equal(t, "1000000000", string(params[1]))
		return solana.Signature{4}.String(), nil
	})

	sig, err := client.SendTransaction(context.Background(), tx, shared.CommitmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, solana.ID(tx), sig)

	sig, err = client.RequestAirdrop(context.Background(), payer.PublicKey(), solana.LamportsPerSOL)
	require.NoError(t, err)
	assert.Equal(t, solana.Signature{4}, sig)
}

func TestUnavailableNode(t *testing.T) {
	t.Run("server error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()
		client := ledger.NewClient(config.LedgerConfig{RPCURL: srv.URL}, nil, nil)

		_, err := client.LatestBlockhash(context.Background(), shared.CommitmentFinalized)
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})

	t.Run("rate limited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()
		client := ledger.NewClient(config.LedgerConfig{RPCURL: srv.URL}, nil, nil)

		_, err := client.TokenDecimals(context.Background(), mustKey(t))
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
	})

	t.Run("malformed body is a decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer srv.Close()
		client := ledger.NewClient(config.LedgerConfig{RPCURL: srv.URL}, nil, nil)

		_, err := client.LatestBlockhash(context.Background(), shared.CommitmentFinalized)
		assert.True(t, infra.IsKind(err, infra.KindDecode))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		client := ledger.NewClient(config.LedgerConfig{RPCURL: url, Timeout: time.Second}, nil, nil)

		_, err := client.Balance(context.Background(), mustKey(t), shared.CommitmentConfirmed)
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
	})

	t.Run("rpc error is not unavailable", func(t *testing.T) {
		node, client := newFakeNode(t)
		node.on("getBalance", func([]json.RawMessage) (any, *rpcError) {
			return nil, &rpcError{Code: -32000, Message: "boom"}
		})
		_, err := client.Balance(context.Background(), mustKey(t), shared.CommitmentConfirmed)
		assert.True(t, infra.IsKind(err, infra.KindRPCError))
		assert.NotErrorIs(t, err, errs.ErrLedgerUnavailable)
	})
}

func TestSendTransactionRefusesForgedSignature(t *testing.T) {
	node, client := newFakeNode(t)
	called := false
	node.on("sendTransaction", func([]json.RawMessage) (any, *rpcError) {
		called = true
		return nil, nil
	})
	payer, err := solana.NewKeypair()
	require.NoError(t, err)
	tx, err := solana.NewTransaction(payer.PublicKey(), solana.Hash(mustKey(t)),
		solana.SystemTransfer(payer.PublicKey(), mustKey(t), 1))
	require.NoError(t, err)
	tx.Signatures[0] = solana.Signature{1}

	_, err = client.SendTransaction(context.Background(), tx, shared.CommitmentConfirmed)
	assert.ErrorIs(t, err, solana.ErrBadSignature)
	assert.False(t, called)
}
