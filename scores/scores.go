package scores

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Result is one finished session as recorded in the ledger.
type Result struct {
	ID        string
	When      time.Time
	Phrase    string
	Outcome   string // won, lost, or abandoned
	LivesLeft int
	Guesses   int
}

// Summary aggregates the ledger. Abandoned sessions count toward Games
// but neither Won nor Lost.
type Summary struct {
	Games int
	Won   int
	Lost  int
}

// Store is the ledger surface the game binary records into. The game
// session itself never touches it; recording happens after play ends.
type Store interface {
	Record(ctx context.Context, r Result) error
	Summary(ctx context.Context) (Summary, error)
	Recent(ctx context.Context, limit int) ([]Result, error)
	Close() error
}

// NewID returns a random hex identifier for a result row.
func NewID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
