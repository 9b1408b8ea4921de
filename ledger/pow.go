package ledger

import (
	"strings"
	"time"
)

// ProofOfWork is the receipt of a successful mining run: the winning nonce
// and the wall-clock time the search took. The elapsed time depends on the
// host and is excluded from any correctness property.
type ProofOfWork struct {
	Nonce   uint64
	Elapsed time.Duration
}

// Mine runs the brute-force proof-of-work search for b. Starting from nonce
// zero and incrementing by one, it recomputes the full block hash for each
// candidate until the hex digest starts with difficulty '0' characters, so
// the winning nonce is the smallest among the sequentially tried values. It
// returns a finalized copy of b carrying that nonce and hash together with
// the receipt; b itself is left untouched.
//
// The search is unbounded and cannot be cancelled: a difficulty too high
// for the host keeps the calling goroutine busy indefinitely.
func Mine(b Block, difficulty int) (Block, ProofOfWork) {
	start := time.Now()
	prefix := strings.Repeat("0", difficulty)

	var nonce uint64
	for {
		b.Nonce = nonce
		hash := b.ComputeHash()
		if strings.HasPrefix(hash, prefix) {
			b.Hash = hash
			return b, ProofOfWork{Nonce: nonce, Elapsed: time.Since(start)}
		}
		nonce++
	}
}

// meetsDifficulty reports whether hash starts with the required number of
// leading zero hex digits.
func meetsDifficulty(hash string, difficulty int) bool {
	return strings.HasPrefix(hash, strings.Repeat("0", difficulty))
}
