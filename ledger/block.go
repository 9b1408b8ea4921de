package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Block rappresenta un blocco nella blockchain
type Block struct {
	Index     int    `json:"index"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"` // Opaque payload: free-form text or a key-value mapping
	PrevHash  string `json:"previous_hash"`
	Nonce     uint64 `json:"nonce"`
	Hash      string `json:"hash"`
}

// NewBlock builds an unmined block. The nonce starts at zero and the hash is
// computed immediately from the other fields, so the value is internally
// consistent but does not yet satisfy any difficulty target; Mine produces
// the finalized version.
func NewBlock(index int, timestamp string, data any, prevHash string) Block {
	b := Block{
		Index:     index,
		Timestamp: timestamp,
		Data:      data,
		PrevHash:  prevHash,
		Nonce:     0,
	}
	b.Hash = b.ComputeHash()
	return b
}

// ComputeHash returns the SHA-256 digest of the block's canonical
// serialization as lowercase hex. The serialization is compact JSON with
// keys in sorted order, nested map payloads included since json.Marshal
// sorts map keys, so equal logical content always hashes to the same bytes
// no matter how the block was built. The stored Hash field does not
// participate, which is what lets validation recompute and compare it.
func (b Block) ComputeHash() string {
	// Field order matches the sorted key order of the canonical encoding.
	header := struct {
		Data      any    `json:"data"`
		Index     int    `json:"index"`
		Nonce     uint64 `json:"nonce"`
		PrevHash  string `json:"previous_hash"`
		Timestamp string `json:"timestamp"`
	}{
		Data:      b.Data,
		Index:     b.Index,
		Nonce:     b.Nonce,
		PrevHash:  b.PrevHash,
		Timestamp: b.Timestamp,
	}

	serialized, _ := json.Marshal(header)

	hash := sha256.Sum256(serialized)
	return hex.EncodeToString(hash[:])
}

// String renders a short form with truncated hashes for readability.
func (b Block) String() string {
	return fmt.Sprintf("Block(index=%d, timestamp=%s, nonce=%d, hash=%.12s..., prev=%.12s...)",
		b.Index, b.Timestamp, b.Nonce, b.Hash, b.PrevHash)
}
