package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"beatbox-store/internal/infra"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"
)

// codeInvalidParams is returned by getTokenSupply when the mint account does not exist.
const codeInvalidParams = -32602

func commitmentOf(c shared.Commitment) rpc.CommitmentType {
	return rpc.CommitmentType(c)
}

func (c *Client) LatestBlockhash(ctx context.Context, commitment shared.Commitment) (_ shared.Blockhash, err error) {
	defer func(start time.Time) { err = c.observe("getLatestBlockhash", start, err) }(time.Now())

	out, err := c.rpc.GetLatestBlockhash(ctx, commitmentOf(commitment))
	if err != nil {
		return shared.Blockhash{}, err
	}
	if out == nil || out.Value == nil || out.Value.Blockhash.IsZero() {
		return shared.Blockhash{}, errors.New("empty blockhash in response")
	}
	return shared.Blockhash{Hash: out.Value.Blockhash, LastValidBlockHeight: out.Value.LastValidBlockHeight}, nil
}

func (c *Client) TokenDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error) {
	decimals, err := c.tokenSupplyDecimals(ctx, mint)
	if err != nil {
		var rpcErr infra.LedgerError
		if errors.As(err, &rpcErr) && rpcErr.Code == codeInvalidParams {
			return 0, infra.WrapLedgerErr("mint "+mint.String()+" not found", err, infra.KindNotFound)
		}
		return 0, err
	}
	return decimals, nil
}

func (c *Client) tokenSupplyDecimals(ctx context.Context, mint solana.PublicKey) (_ uint8, err error) {
	defer func(start time.Time) { err = c.observe("getTokenSupply", start, err) }(time.Now())

	out, err := c.rpc.GetTokenSupply(ctx, mint, rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}
	if out == nil || out.Value == nil {
		return 0, errors.New("empty token supply in response")
	}
	return out.Value.Decimals, nil
}

func (c *Client) AccountInfo(ctx context.Context, account solana.PublicKey, commitment shared.Commitment) (_ *shared.AccountSnapshot, err error) {
	defer func(start time.Time) { err = c.observe("getAccountInfo", start, err) }(time.Now())

	out, err := c.rpc.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Encoding:   solanago.EncodingBase64,
		Commitment: commitmentOf(commitment),
	})
	if err != nil {
		return nil, err
	}
	return &shared.AccountSnapshot{
		Owner:      out.Value.Owner,
		Lamports:   out.Value.Lamports,
		Data:       out.GetBinary(),
		Executable: out.Value.Executable,
	}, nil
}

// TokenBalance returns the raw amount held by an SPL token account.
// A missing account is reported as infra.KindNotFound.
func (c *Client) TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	info, err := c.AccountInfo(ctx, account, shared.CommitmentConfirmed)
	if err != nil {
		return 0, err
	}
	if !info.Owner.Equals(solana.TokenProgramID) {
		return 0, infra.WrapLedgerErr("account "+account.String()+" is not a token account", nil, infra.KindDecode)
	}
	ta, err := solana.DecodeTokenAccount(info.Data)
	if err != nil {
		return 0, infra.WrapLedgerErr("failed to decode token account", err, infra.KindDecode)
	}
	return ta.Amount, nil
}

func (c *Client) Balance(ctx context.Context, account solana.PublicKey, commitment shared.Commitment) (_ uint64, err error) {
	defer func(start time.Time) { err = c.observe("getBalance", start, err) }(time.Now())

	out, err := c.rpc.GetBalance(ctx, account, commitmentOf(commitment))
	if err != nil {
		return 0, err
	}
	return out.Value, nil
}

func (c *Client) SignaturesForAddress(ctx context.Context, address solana.PublicKey, q shared.SignatureQuery) (_ []shared.SignatureRecord, err error) {
	defer func(start time.Time) { err = c.observe("getSignaturesForAddress", start, err) }(time.Now())

	opts := &rpc.GetSignaturesForAddressOpts{Commitment: commitmentOf(q.Commitment)}
	if q.Limit > 0 {
		limit := q.Limit
		opts.Limit = &limit
	}
	if q.Before != nil {
		opts.Before = *q.Before
	}

	out, err := c.rpc.GetSignaturesForAddressWithOpts(ctx, address, opts)
	if err != nil {
		return nil, err
	}
	records := make([]shared.SignatureRecord, 0, len(out))
	for _, r := range out {
		if r == nil {
			continue
		}
		records = append(records, shared.SignatureRecord{
			Signature:          r.Signature,
			Slot:               r.Slot,
			Failed:             r.Err != nil,
			BlockTime:          unixTime(r.BlockTime),
			ConfirmationStatus: shared.Commitment(r.ConfirmationStatus),
		})
	}
	return records, nil
}

// Transaction fetches a landed transaction. One not yet visible at the
// requested commitment is reported as infra.KindNotFound.
func (c *Client) Transaction(ctx context.Context, sig solana.Signature, commitment shared.Commitment) (_ *shared.TransactionRecord, err error) {
	defer func(start time.Time) { err = c.observe("getTransaction", start, err) }(time.Now())

	out, err := c.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solanago.EncodingBase64,
		Commitment:                     commitmentOf(commitment),
		MaxSupportedTransactionVersion: rpc.NewTransactionVersion(0),
	})
	if err != nil {
		return nil, err
	}
	if out.Transaction == nil {
		return nil, rpc.ErrNotFound
	}
	tx, err := solana.DecodeTransaction(out.Transaction.GetBinary())
	if err != nil {
		return nil, err
	}

	rec := &shared.TransactionRecord{
		Signature:   sig,
		Slot:        out.Slot,
		BlockTime:   unixTime(out.BlockTime),
		Transaction: tx,
	}
	if meta := out.Meta; meta != nil {
		if meta.Err != nil {
			rec.Failed = true
			rec.FailureReason = failureReason(meta.Err)
		}
		rec.Loaded = solana.LoadedAddresses{
			Writable: meta.LoadedAddresses.Writable,
			Readonly: meta.LoadedAddresses.ReadOnly,
		}
	}
	return rec, nil
}

// SendTransaction submits tx after checking the signatures it carries.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction, commitment shared.Commitment) (_ solana.Signature, err error) {
	if err := solana.VerifySignatures(tx); err != nil {
		return solana.Signature{}, infra.WrapLedgerErr("refusing to send transaction", err, infra.KindDecode)
	}
	defer func(start time.Time) { err = c.observe("sendTransaction", start, err) }(time.Now())

	return c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: commitmentOf(commitment),
	})
}

func (c *Client) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (_ solana.Signature, err error) {
	defer func(start time.Time) { err = c.observe("requestAirdrop", start, err) }(time.Now())

	return c.rpc.RequestAirdrop(ctx, account, lamports, rpc.CommitmentConfirmed)
}

func failureReason(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "transaction failed"
	}
	return string(raw)
}

func unixTime(sec *solanago.UnixTimeSeconds) *time.Time {
	if sec == nil {
		return nil
	}
	t := sec.Time().UTC()
	return &t
}
