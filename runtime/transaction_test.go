package runtime

import (
	"datashare/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransaction_Commit_Runs_Participants_In_Order(t *testing.T) {
	req := require.New(t)
	tx := NewTransaction()
	var calls []string

	req.NoError(tx.Enlist(func() { calls = append(calls, "commit-1") }, func() { calls = append(calls, "abort-1") }))
	req.NoError(tx.Enlist(func() { calls = append(calls, "commit-2") }, nil))

	req.NoError(tx.Commit())

	req.Equal([]string{"commit-1", "commit-2"}, calls)
	req.Equal(TxCommitted, tx.State())
	req.NotEmpty(tx.ID())
}

func TestTransaction_Abort(t *testing.T) {
	req := require.New(t)
	tx := NewTransaction()
	var calls []string

	req.NoError(tx.Enlist(func() { calls = append(calls, "commit") }, func() { calls = append(calls, "abort") }))
	req.NoError(tx.Abort())

	req.Equal([]string{"abort"}, calls)
	req.Equal(TxAborted, tx.State())
	req.Equal("ABORTED", tx.State().String())
}

func TestTransaction_Resolves_Once(t *testing.T) {
	req := require.New(t)
	tx := NewTransaction()
	req.NoError(tx.Commit())

	req.ErrorIs(tx.Commit(), errors.ErrTransactionClosed)
	req.ErrorIs(tx.Abort(), errors.ErrTransactionClosed)
	req.ErrorIs(tx.Enlist(nil, nil), errors.ErrTransactionClosed)
}
