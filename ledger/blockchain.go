package ledger

import (
	"fmt"
	"sync"
	"time"
)

// GenesisData is the payload of the first block of every chain.
const GenesisData = "Genesis Block"

type Blockchain struct {
	mu          sync.RWMutex
	difficulty  int
	blocks      []Block
	miningTimes []time.Duration
	nonceCounts []uint64
}

// NewBlockchain creates a new chain with the given proof-of-work difficulty
// and synchronously mines the genesis block (index 0, previous hash "0")
// before returning, so a returned chain always holds at least one block and
// one entry in each statistics slice. Returns an error if difficulty is not
// at least 1.
func NewBlockchain(difficulty int) (*Blockchain, error) {
	if difficulty < 1 {
		return nil, fmt.Errorf("difficulty must be at least 1, got %d", difficulty)
	}

	bc := &Blockchain{
		difficulty: difficulty,
		blocks:     make([]Block, 0),
	}

	// Crea genesis block
	genesis := NewBlock(0, timestampNow(), GenesisData, "0")
	bc.appendMined(Mine(genesis, difficulty))

	return bc, nil
}

// AddBlock builds the successor of the latest block carrying the given
// payload, mines it and appends it together with its mining statistics.
// It returns the mined block. This is the only supported write path; a
// block never enters the chain unmined.
func (bc *Blockchain) AddBlock(data any) Block {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	next := NewBlock(latest.Index+1, timestampNow(), data, latest.Hash)

	mined, pow := Mine(next, bc.difficulty)
	bc.appendMined(mined, pow)

	return mined
}

// appendMined stores a mined block and its paired statistics. Callers must
// hold the write lock (NewBlockchain owns the chain exclusively).
func (bc *Blockchain) appendMined(b Block, pow ProofOfWork) {
	bc.blocks = append(bc.blocks, b)
	bc.miningTimes = append(bc.miningTimes, pow.Elapsed)
	bc.nonceCounts = append(bc.nonceCounts, pow.Nonce)
}

// Validate scans the chain for integrity violations and returns a verdict
// together with a human-readable reason. An invalid chain is a normal,
// expected outcome rather than an error: the chain stays readable either
// way and nothing is repaired. Each (previous, current) pair is checked in
// order for the previous-hash link, then hash consistency, then the
// difficulty prefix, stopping at the first violation; the genesis block is
// re-checked on its own at the end since it has no predecessor.
func (bc *Blockchain) Validate() (bool, string) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return false, "empty blockchain"
	}

	for i := 1; i < len(bc.blocks); i++ {
		curr := bc.blocks[i]
		prev := bc.blocks[i-1]

		if curr.PrevHash != prev.Hash {
			return false, fmt.Sprintf("block %d: previous_hash does not match (chain broken)", i)
		}

		if curr.ComputeHash() != curr.Hash {
			return false, fmt.Sprintf("block %d: hash tampering detected", i)
		}

		if !meetsDifficulty(curr.Hash, bc.difficulty) {
			return false, fmt.Sprintf("block %d: difficulty rule violated", i)
		}
	}

	// Verifica genesis
	genesis := bc.blocks[0]
	if !meetsDifficulty(genesis.Hash, bc.difficulty) {
		return false, "genesis block does not meet difficulty"
	}
	if genesis.ComputeHash() != genesis.Hash {
		return false, "genesis block hash mismatch"
	}

	return true, "chain is valid"
}

// Tamper overwrites the payload of the block at index without recomputing
// its nonce or hash, simulating an attacker editing history in place. The
// resulting inconsistency is deliberately not prevented here; it is caught
// by the next Validate call. This exists to demonstrate detection and is
// not a supported mutation path. Returns an error if index addresses no
// block.
func (bc *Blockchain) Tamper(index int, data any) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if index < 0 || index >= len(bc.blocks) {
		return fmt.Errorf("block index %d out of range", index)
	}

	bc.blocks[index].Data = data
	return nil
}

// Latest returns the most recently added block in the blockchain.
// Returns an error if the blockchain is empty.
func (bc *Blockchain) Latest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// BlockAt retrieves a block by its index in the chain. Returns an error if
// the index is out of range.
func (bc *Blockchain) BlockAt(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index out of range")
	}

	return bc.blocks[index], nil
}

// Len returns the number of blocks in the chain.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Difficulty returns the number of leading zero hex digits every block hash
// must carry.
func (bc *Blockchain) Difficulty() int {
	return bc.difficulty
}

// Blocks returns a copy of the chain for the display surface.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

// MiningTimes returns a copy of the per-block mining durations, parallel to
// the chain.
func (bc *Blockchain) MiningTimes() []time.Duration {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]time.Duration, len(bc.miningTimes))
	copy(out, bc.miningTimes)
	return out
}

// NonceCounts returns a copy of the per-block winning nonces, parallel to
// the chain.
func (bc *Blockchain) NonceCounts() []uint64 {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]uint64, len(bc.nonceCounts))
	copy(out, bc.nonceCounts)
	return out
}

// AverageMiningTime returns the arithmetic mean of the per-block mining
// durations, or 0 for a chain with no blocks.
func (bc *Blockchain) AverageMiningTime() time.Duration {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.miningTimes) == 0 {
		return 0
	}

	var total time.Duration
	for _, t := range bc.miningTimes {
		total += t
	}
	return total / time.Duration(len(bc.miningTimes))
}

// AverageNonce returns the arithmetic mean of the per-block winning nonces,
// or 0 for a chain with no blocks.
func (bc *Blockchain) AverageNonce() float64 {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.nonceCounts) == 0 {
		return 0
	}

	var total uint64
	for _, n := range bc.nonceCounts {
		total += n
	}
	return float64(total) / float64(len(bc.nonceCounts))
}

// timestampNow captures the creation instant as an RFC 3339 UTC string. The
// string is opaque once captured: it participates in hashing as text and is
// never parsed back.
func timestampNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
