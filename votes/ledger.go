package votes

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	northlight "github.com/northlight/northlight-go"
	"github.com/northlight/northlight-go/internal/logging"
)

const (
	// StorageKey is the fixed store key holding all feedback ids this
	// device has voted for
	StorageKey = "NorthlightVotedFeedbackIds"

	// identifierKey holds the generated user identifier so a device keeps
	// one identity across launches
	identifierKey = "NorthlightUserIdentifier"
)

// Identity is the slice of the SDK config the ledger needs: reading and
// setting the device-scoped user identifier. *northlight.Config satisfies it.
type Identity interface {
	UserIdentifier() string
	SetUserIdentifier(id string)
}

// RemoteVote performs the server-side vote and returns the new vote count
type RemoteVote func(ctx context.Context) (int, error)

// Ledger tracks which feedback items this device has already voted for and
// enforces at-most-one-vote-per-item on the client side. The set is loaded
// from the store on first use, held in memory for the rest of the process,
// and written back synchronously on every insertion. Entries are never
// removed: votes are permanent from the client's perspective.
//
// One mutex guards the set, so the persisted file cannot corrupt under
// concurrent use. The check-then-network sequence in VoteFor is deliberately
// not atomic: two concurrent votes for the same id can both reach the
// network, and the server arbitrates the duplicate.
type Ledger struct {
	mu       sync.Mutex
	store    Store
	identity Identity
	ids      map[string]struct{}
	loaded   bool

	// newIdentifier generates a fresh identifier; replaceable in tests
	newIdentifier func() string
}

// NewLedger creates a ledger over the given store and identity.
func NewLedger(store Store, identity Identity) *Ledger {
	return &Ledger{
		store:         store,
		identity:      identity,
		newIdentifier: uuid.NewString,
	}
}

// HasVoted reports whether this device has already voted for feedbackID
func (l *Ledger) HasVoted(feedbackID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load()
	_, ok := l.ids[feedbackID]
	return ok
}

// RecordVote inserts feedbackID into the voted set and persists the full set
// immediately. Call it only after the server has confirmed the vote.
func (l *Ledger) RecordVote(feedbackID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load()
	l.ids[feedbackID] = struct{}{}
	return l.persist()
}

// VotedIDs returns a sorted copy of the voted set
func (l *Ledger) VotedIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load()
	return l.sortedIDs()
}

// VoteFor is the composed vote flow used by callers. It short-circuits with
// an already-voted error before any network call when the ledger contains
// feedbackID, ensures a user identifier exists (generating and persisting
// one when absent), invokes the remote vote, and on success records the id
// and returns the new count. Failures propagate untouched and nothing is
// recorded.
func (l *Ledger) VoteFor(ctx context.Context, feedbackID string, remote RemoteVote) (int, error) {
	if l.HasVoted(feedbackID) {
		return 0, northlight.NewAlreadyVotedError(feedbackID)
	}

	l.ensureIdentifier()

	count, err := remote(ctx)
	if err != nil {
		return 0, err
	}

	if err := l.RecordVote(feedbackID); err != nil {
		// The server confirmed the vote; a persistence failure must not
		// turn it into a caller-visible error
		logging.Warn("failed to persist vote ledger",
			zap.String("feedback_id", feedbackID),
			zap.Error(err),
		)
	}
	return count, nil
}

// ensureIdentifier makes sure the identity carries a user identifier,
// reusing the persisted one from a previous launch or generating a fresh
// random value
func (l *Ledger) ensureIdentifier() {
	if l.identity == nil || l.identity.UserIdentifier() != "" {
		return
	}

	if saved, err := l.store.Load(identifierKey); err == nil && len(saved) > 0 && saved[0] != "" {
		l.identity.SetUserIdentifier(saved[0])
		return
	}

	id := l.newIdentifier()
	l.identity.SetUserIdentifier(id)
	if err := l.store.Save(identifierKey, []string{id}); err != nil {
		logging.Warn("failed to persist user identifier", zap.Error(err))
	}
}

// load populates the in-memory set from the store once per process.
// Callers must hold l.mu. A store that cannot be read starts the session
// with an empty set rather than blocking voting entirely.
func (l *Ledger) load() {
	if l.loaded {
		return
	}
	l.ids = make(map[string]struct{})
	l.loaded = true

	saved, err := l.store.Load(StorageKey)
	if err != nil {
		logging.Warn("failed to load vote ledger", zap.Error(err))
		return
	}
	for _, id := range saved {
		l.ids[id] = struct{}{}
	}
}

// persist writes the full set back to the store. Callers must hold l.mu.
func (l *Ledger) persist() error {
	return l.store.Save(StorageKey, l.sortedIDs())
}

// sortedIDs returns the set as a sorted slice for deterministic persistence.
// Callers must hold l.mu.
func (l *Ledger) sortedIDs() []string {
	ids := make([]string, 0, len(l.ids))
	for id := range l.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
