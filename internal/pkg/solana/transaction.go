package solana

import (
	"encoding/base64"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	ErrNoFeePayer          = errors.New("transaction fee payer required")
	ErrNoBlockhash         = errors.New("transaction recent blockhash required")
	ErrBadSignature        = errors.New("transaction carries an invalid signature")
	ErrUnknownSigner       = errors.New("key is not a required signer of this transaction")
	ErrAccountIndexInvalid = errors.New("instruction account index out of range")
)

// Transaction is a message plus one signature slot per required signer. Unsigned
// slots hold the zero signature.
type Transaction = solana.Transaction

// LoadedAddresses are the keys a node resolved from address tables, as reported in
// transaction metadata.
type LoadedAddresses struct {
	Writable []PublicKey
	Readonly []PublicKey
}

// NewTransaction compiles the instructions with feePayer in the first signer slot.
func NewTransaction(feePayer PublicKey, blockhash Hash, instructions ...Instruction) (*Transaction, error) {
	if feePayer.IsZero() {
		return nil, ErrNoFeePayer
	}
	if blockhash.IsZero() {
		return nil, ErrNoBlockhash
	}
	ixs := make([]solana.Instruction, len(instructions))
	for i, ix := range instructions {
		ixs[i] = ix
	}
	tx, err := solana.NewTransaction(ixs, blockhash, solana.TransactionPayer(feePayer))
	if err != nil {
		return nil, err
	}
	tx.Signatures = make([]Signature, tx.Message.Header.NumRequiredSignatures)
	return tx, nil
}

// PartialSign adds signatures from the given keypairs, leaving other slots as they are.
func PartialSign(tx *Transaction, signers ...*Keypair) error {
	byKey := make(map[PublicKey]*Keypair, len(signers))
	required := tx.Message.Signers()
	for _, kp := range signers {
		pk := kp.PublicKey()
		if !required.Contains(pk) {
			return fmt.Errorf("%w: %s", ErrUnknownSigner, pk)
		}
		byKey[pk] = kp
	}
	_, err := tx.PartialSign(func(key PublicKey) *solana.PrivateKey {
		if kp, ok := byKey[key]; ok {
			return kp.privateKey()
		}
		return nil
	})
	return err
}

// SignatureFor returns the signature slot of pk and whether pk is a required signer.
func SignatureFor(tx *Transaction, pk PublicKey) (Signature, bool) {
	for i, s := range tx.Message.Signers() {
		if s.Equals(pk) && i < len(tx.Signatures) {
			return tx.Signatures[i], true
		}
	}
	return Signature{}, false
}

// MissingSigners lists required signers whose slot is still empty.
func MissingSigners(tx *Transaction) []PublicKey {
	var missing []PublicKey
	for i, s := range tx.Message.Signers() {
		if i >= len(tx.Signatures) || tx.Signatures[i].IsZero() {
			missing = append(missing, s)
		}
	}
	return missing
}

// VerifySignatures checks every present signature against the message. Empty
// slots are skipped so partially signed transactions pass.
func VerifySignatures(tx *Transaction) error {
	payload, err := tx.Message.MarshalBinary()
	if err != nil {
		return err
	}
	for i, s := range tx.Message.Signers() {
		if i >= len(tx.Signatures) || tx.Signatures[i].IsZero() {
			continue
		}
		if !Verify(s, payload, tx.Signatures[i]) {
			return fmt.Errorf("%w: %s", ErrBadSignature, s)
		}
	}
	return nil
}

// ID is the first signature, which the ledger uses as the transaction id.
func ID(tx *Transaction) Signature {
	if len(tx.Signatures) == 0 {
		return Signature{}
	}
	return tx.Signatures[0]
}

func FeePayer(tx *Transaction) PublicKey {
	if len(tx.Message.AccountKeys) == 0 {
		return PublicKey{}
	}
	return tx.Message.AccountKeys[0]
}

// EncodeBase64 serializes for transport without requiring all signatures.
func EncodeBase64(tx *Transaction) (string, error) {
	if err := VerifySignatures(tx); err != nil {
		return "", err
	}
	return tx.ToBase64()
}

func DecodeTransaction(raw []byte) (*Transaction, error) {
	dec := bin.NewBinDecoder(raw)
	tx, err := solana.TransactionFromDecoder(dec)
	if err != nil {
		return nil, err
	}
	if n := dec.Remaining(); n > 0 {
		return nil, fmt.Errorf("%d trailing bytes after transaction", n)
	}
	if int(tx.Message.Header.NumRequiredSignatures) != len(tx.Signatures) {
		return nil, fmt.Errorf("signature count %d does not match header %d", len(tx.Signatures), tx.Message.Header.NumRequiredSignatures)
	}
	return tx, nil
}

func DecodeTransactionBase64(s string) (*Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return DecodeTransaction(raw)
}

// DecompileInstructions expands compiled instructions back to key-addressed form.
// Keys are the static keys followed by table-loaded writable and readonly keys.
func DecompileInstructions(tx *Transaction, loaded LoadedAddresses) ([]Instruction, error) {
	msg := tx.Message
	keys := make([]PublicKey, 0, len(msg.AccountKeys)+len(loaded.Writable)+len(loaded.Readonly))
	keys = append(keys, msg.AccountKeys...)
	keys = append(keys, loaded.Writable...)
	keys = append(keys, loaded.Readonly...)

	out := make([]Instruction, 0, len(msg.Instructions))
	for n, ci := range msg.Instructions {
		if int(ci.ProgramIDIndex) >= len(keys) {
			return nil, fmt.Errorf("instruction %d: %w", n, ErrAccountIndexInvalid)
		}
		metas := make(solana.AccountMetaSlice, len(ci.Accounts))
		for i, idx := range ci.Accounts {
			if int(idx) >= len(keys) {
				return nil, fmt.Errorf("instruction %d: %w", n, ErrAccountIndexInvalid)
			}
			metas[i] = &AccountMeta{
				PublicKey:  keys[idx],
				IsSigner:   isSigner(msg, int(idx)),
				IsWritable: isWritable(msg, int(idx), loaded),
			}
		}
		data := append([]byte(nil), ci.Data...)
		out = append(out, wrap(solana.NewInstruction(keys[ci.ProgramIDIndex], metas, data)))
	}
	return out, nil
}

func isSigner(msg solana.Message, i int) bool {
	return i < int(msg.Header.NumRequiredSignatures)
}

func isWritable(msg solana.Message, i int, loaded LoadedAddresses) bool {
	static := len(msg.AccountKeys)
	if i < static {
		if i < int(msg.Header.NumRequiredSignatures) {
			return i < int(msg.Header.NumRequiredSignatures)-int(msg.Header.NumReadonlySignedAccounts)
		}
		return i < static-int(msg.Header.NumReadonlyUnsignedAccounts)
	}
	return i-static < len(loaded.Writable)
}
