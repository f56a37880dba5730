//go:build unit

package solana_test

import (
	"testing"

	"beatbox-store/internal/pkg/solana"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) solana.PublicKey {
	t.Helper()
	pk, err := solana.NewRandomPublicKey()
	require.NoError(t, err)
	return pk
}

func newKeypair(t *testing.T) *solana.Keypair {
	t.Helper()
	kp, err := solana.NewKeypair()
	require.NoError(t, err)
	return kp
}

func instructionData(t *testing.T, ix solana.Instruction) []byte {
	t.Helper()
	data, err := ix.Data()
	require.NoError(t, err)
	return data
}

func TestTransactionRoundTrip(t *testing.T) {
	buyer := newKeypair(t)
	shop := newKeypair(t)
	reference := newKey(t)
	mint := newKey(t)
	blockhash := solana.Hash(newKey(t))

	transfer := solana.SystemTransfer(buyer.PublicKey(), shop.PublicKey(), 50_000_000).WithReadonlyKey(reference)
	award := solana.TransferChecked(newKey(t), mint, newKey(t), shop.PublicKey(), 1, 0)

	tx, err := solana.NewTransaction(buyer.PublicKey(), blockhash, transfer, award)
	require.NoError(t, err)
	require.NoError(t, solana.PartialSign(tx, shop))

	encoded, err := solana.EncodeBase64(tx)
	require.NoError(t, err)

	decoded, err := solana.DecodeTransactionBase64(encoded)
	require.NoError(t, err)

	t.Run("message is identical", func(t *testing.T) {
		if diff := cmp.Diff(tx.Message, decoded.Message, cmp.AllowUnexported(solanago.Message{}), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("message mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, buyer.PublicKey(), solana.FeePayer(decoded))
	})

	t.Run("instructions keep order, keys and data", func(t *testing.T) {
		want, err := solana.DecompileInstructions(tx, solana.LoadedAddresses{})
		require.NoError(t, err)
		got, err := solana.DecompileInstructions(decoded, solana.LoadedAddresses{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := range want {
			assert.Equal(t, want[i].ProgramID(), got[i].ProgramID())
			assert.Equal(t, want[i].Accounts(), got[i].Accounts())
			assert.Equal(t, instructionData(t, want[i]), instructionData(t, got[i]))
		}
		assert.True(t, got[0].HasAccount(reference))
		assert.False(t, got[1].HasAccount(reference))
	})

	t.Run("shop signature survives and verifies", func(t *testing.T) {
		sig, ok := solana.SignatureFor(decoded, shop.PublicKey())
		require.True(t, ok)
		assert.False(t, sig.IsZero())
		require.NoError(t, solana.VerifySignatures(decoded))

		assert.Equal(t, []solana.PublicKey{buyer.PublicKey()}, solana.MissingSigners(decoded))
	})

	t.Run("buyer can complete signing", func(t *testing.T) {
		require.NoError(t, solana.PartialSign(decoded, buyer))
		assert.Empty(t, solana.MissingSigners(decoded))
		require.NoError(t, decoded.VerifySignatures())
		assert.Equal(t, decoded.Signatures[0], solana.ID(decoded))
	})
}

func TestCompiledAccountOrdering(t *testing.T) {
	buyer := newKey(t)
	shop := newKey(t)
	reference := newKey(t)
	blockhash := solana.Hash(newKey(t))

	ix := solana.SystemTransfer(buyer, shop, 1).WithReadonlyKey(reference)
	tx, err := solana.NewTransaction(buyer, blockhash, ix)
	require.NoError(t, err)

	msg := tx.Message
	require.Len(t, msg.AccountKeys, 4)
	assert.Equal(t, buyer, msg.AccountKeys[0])
	assert.Equal(t, shop, msg.AccountKeys[1])
	assert.ElementsMatch(t, []solana.PublicKey{reference, solana.SystemProgramID}, msg.AccountKeys[2:])
	assert.Equal(t, uint8(1), msg.Header.NumRequiredSignatures)
	assert.Equal(t, uint8(0), msg.Header.NumReadonlySignedAccounts)
	assert.Equal(t, uint8(2), msg.Header.NumReadonlyUnsignedAccounts)
	assert.Len(t, tx.Signatures, 1)

	decompiled, err := solana.DecompileInstructions(tx, solana.LoadedAddresses{})
	require.NoError(t, err)
	require.Len(t, decompiled, 1)
	refMeta := decompiled[0].Accounts()[2]
	assert.Equal(t, reference, refMeta.PublicKey)
	assert.False(t, refMeta.IsSigner)
	assert.False(t, refMeta.IsWritable)
	payerMeta := decompiled[0].Accounts()[0]
	assert.True(t, payerMeta.IsSigner)
	assert.True(t, payerMeta.IsWritable)
}

func TestNewTransactionErrors(t *testing.T) {
	key := newKey(t)
	ix := solana.SystemTransfer(key, newKey(t), 1)

	_, err := solana.NewTransaction(solana.PublicKey{}, solana.Hash(key), ix)
	assert.ErrorIs(t, err, solana.ErrNoFeePayer)

	_, err = solana.NewTransaction(key, solana.Hash{}, ix)
	assert.ErrorIs(t, err, solana.ErrNoBlockhash)

	_, err = solana.NewTransaction(key, solana.Hash(key))
	assert.Error(t, err)
}

func TestEncodeRejectsForgedSignature(t *testing.T) {
	buyer := newKey(t)
	tx, err := solana.NewTransaction(buyer, solana.Hash(newKey(t)), solana.SystemTransfer(buyer, newKey(t), 1))
	require.NoError(t, err)

	_, err = solana.EncodeBase64(tx)
	require.NoError(t, err)

	tx.Signatures[0] = solana.Signature{1}
	_, err = solana.EncodeBase64(tx)
	assert.ErrorIs(t, err, solana.ErrBadSignature)
}

func TestPartialSignRejectsStranger(t *testing.T) {
	buyer := newKey(t)
	tx, err := solana.NewTransaction(buyer, solana.Hash(newKey(t)), solana.SystemTransfer(buyer, newKey(t), 1))
	require.NoError(t, err)

	err = solana.PartialSign(tx, newKeypair(t))
	assert.ErrorIs(t, err, solana.ErrUnknownSigner)
}

func TestDecompileVersionedMessage(t *testing.T) {
	payer := newKeypair(t)
	dest := newKey(t)
	loadedWritable := newKey(t)

	tx, err := solana.NewTransaction(payer.PublicKey(), solana.Hash(newKey(t)),
		solana.SystemTransfer(payer.PublicKey(), dest, 7))
	require.NoError(t, err)
	tx.Message.SetAddressTableLookups([]solanago.MessageAddressTableLookup{{
		AccountKey:      newKey(t),
		WritableIndexes: []uint8{0},
		ReadonlyIndexes: []uint8{},
	}})
	// point the transfer destination at the table-loaded key
	tx.Message.Instructions[0].Accounts[1] = uint16(len(tx.Message.AccountKeys))
	require.NoError(t, solana.PartialSign(tx, payer))

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	decoded, err := solana.DecodeTransaction(raw)
	require.NoError(t, err)
	assert.True(t, decoded.Message.IsVersioned())
	require.Len(t, decoded.Message.AddressTableLookups, 1)
	require.NoError(t, solana.VerifySignatures(decoded))

	ixs, err := solana.DecompileInstructions(decoded, solana.LoadedAddresses{Writable: []solana.PublicKey{loadedWritable}})
	require.NoError(t, err)
	params, err := solana.DecodeSystemTransfer(ixs[0])
	require.NoError(t, err)
	assert.Equal(t, loadedWritable, params.To)
	assert.Equal(t, uint64(7), params.Lamports)
	assert.True(t, ixs[0].Accounts()[1].IsWritable)

	_, err = solana.DecompileInstructions(decoded, solana.LoadedAddresses{})
	assert.ErrorIs(t, err, solana.ErrAccountIndexInvalid)
}

func TestDecodeTransactionRejectsGarbage(t *testing.T) {
	_, err := solana.DecodeTransaction([]byte{1, 2, 3})
	assert.Error(t, err)

	_, err = solana.DecodeTransactionBase64("not base64!")
	assert.Error(t, err)
}
