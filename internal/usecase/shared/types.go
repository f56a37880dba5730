package shared

import (
	"errors"
	"strings"
	"time"

	"beatbox-store/internal/pkg/solana"
)

// Commitment is how settled a ledger read must be.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

var ErrUnknownCommitment = errors.New("unknown commitment")

func ParseCommitment(s string) (Commitment, error) {
	switch c := Commitment(strings.ToLower(strings.TrimSpace(s))); c {
	case CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized:
		return c, nil
	case "":
		return CommitmentConfirmed, nil
	default:
		return "", ErrUnknownCommitment
	}
}

type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
}

type AccountSnapshot struct {
	Owner      solana.PublicKey
	Lamports   uint64
	Data       []byte
	Executable bool
}

type SignatureQuery struct {
	Before     *solana.Signature
	Limit      int
	Commitment Commitment
}

// SignatureRecord is one entry of an address's signature history, newest first.
type SignatureRecord struct {
	Signature          solana.Signature
	Slot               uint64
	Failed             bool
	BlockTime          *time.Time
	ConfirmationStatus Commitment
}

// TransactionRecord is a landed transaction with the addresses its lookup tables resolved to.
type TransactionRecord struct {
	Signature     solana.Signature
	Slot          uint64
	BlockTime     *time.Time
	Transaction   *solana.Transaction
	Loaded        solana.LoadedAddresses
	Failed        bool
	FailureReason string
}
