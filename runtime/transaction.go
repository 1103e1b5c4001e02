package runtime

import (
	"datashare/errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type TxState int

const (
	TxOpen TxState = iota
	TxCommitted
	TxAborted
)

func (s TxState) String() string {
	switch s {
	case TxOpen:
		return "OPEN"
	case TxCommitted:
		return "COMMITTED"
	case TxAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

type participant struct {
	onCommit func()
	onAbort  func()
}

// Transaction groups provisional registry additions. Participants are resolved in
// the order they enlisted.
type Transaction struct {
	mu           sync.Mutex
	id           string
	state        TxState
	participants []participant
}

func NewTransaction() *Transaction {
	return &Transaction{id: uuid.NewString()}
}

func (t *Transaction) ID() string { return t.id }

func (t *Transaction) State() TxState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Transaction) Enlist(onCommit, onAbort func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TxOpen {
		return fmt.Errorf("%w: %s is %s", errors.ErrTransactionClosed, t.id, t.state)
	}
	t.participants = append(t.participants, participant{onCommit: onCommit, onAbort: onAbort})
	return nil
}

func (t *Transaction) Commit() error {
	participants, err := t.resolve(TxCommitted)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if p.onCommit != nil {
			p.onCommit()
		}
	}
	return nil
}

func (t *Transaction) Abort() error {
	participants, err := t.resolve(TxAborted)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if p.onAbort != nil {
			p.onAbort()
		}
	}
	return nil
}

func (t *Transaction) resolve(to TxState) ([]participant, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TxOpen {
		return nil, fmt.Errorf("%w: %s is %s", errors.ErrTransactionClosed, t.id, t.state)
	}
	t.state = to
	participants := t.participants
	t.participants = nil
	return participants, nil
}
