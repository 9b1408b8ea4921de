package ledger

import (
	"strings"
	"testing"
)

// TestMineMeetsDifficulty verifies that the finalized block's hash carries
// the required number of leading zero hex digits and stays consistent with
// its own fields.
func TestMineMeetsDifficulty(t *testing.T) {
	unmined := NewBlock(0, "2024-01-01T00:00:00Z", GenesisData, "0")

	mined, pow := Mine(unmined, 1)

	if !strings.HasPrefix(mined.Hash, "0") {
		t.Fatalf("mined hash should start with one zero, got %s", mined.Hash)
	}

	if mined.ComputeHash() != mined.Hash {
		t.Fatal("mined block hash should match ComputeHash of its fields")
	}

	if mined.Nonce != pow.Nonce {
		t.Fatalf("receipt nonce %d should match block nonce %d", pow.Nonce, mined.Nonce)
	}
}

// TestMineFindsSmallestNonce verifies that no nonce below the winning one
// satisfies the difficulty, i.e. the sequential search really stopped at the
// first qualifying value.
func TestMineFindsSmallestNonce(t *testing.T) {
	unmined := NewBlock(1, "2024-01-01T00:00:00Z", "Alice pays 5 BTC to Bob", "0abc")

	_, pow := Mine(unmined, 1)

	for nonce := uint64(0); nonce < pow.Nonce; nonce++ {
		candidate := unmined
		candidate.Nonce = nonce
		if strings.HasPrefix(candidate.ComputeHash(), "0") {
			t.Fatalf("nonce %d already satisfies the difficulty, winner was %d", nonce, pow.Nonce)
		}
	}
}

// TestMineLeavesInputUntouched verifies that mining finalizes a copy: the
// pre-mining descriptor keeps its provisional nonce and hash, so the two
// states stay distinct values.
func TestMineLeavesInputUntouched(t *testing.T) {
	unmined := NewBlock(0, "2024-01-01T00:00:00Z", "payload", "0")
	provisional := unmined.Hash

	mined, _ := Mine(unmined, 1)

	if unmined.Nonce != 0 {
		t.Fatalf("input block nonce should still be 0, got %d", unmined.Nonce)
	}

	if unmined.Hash != provisional {
		t.Fatal("input block hash should still be the provisional one")
	}

	if mined.ComputeHash() != mined.Hash {
		t.Fatal("finalized block should carry the winning hash")
	}
}

// TestMineDeterministic verifies that mining the same descriptor twice finds
// the same nonce and hash; only the elapsed time may differ between runs.
func TestMineDeterministic(t *testing.T) {
	unmined := NewBlock(2, "2024-01-01T00:00:00Z", "Bob pays 2 BTC to Charlie", "00ff")

	first, firstPow := Mine(unmined, 1)
	second, secondPow := Mine(unmined, 1)

	if first.Hash != second.Hash {
		t.Fatalf("mining is not deterministic: %s != %s", first.Hash, second.Hash)
	}

	if firstPow.Nonce != secondPow.Nonce {
		t.Fatalf("mining found different nonces: %d != %d", firstPow.Nonce, secondPow.Nonce)
	}
}

// TestMeetsDifficulty covers the prefix rule on both sides of the boundary.
func TestMeetsDifficulty(t *testing.T) {
	if !meetsDifficulty("00abc", 2) {
		t.Fatal("hash with two leading zeros should meet difficulty 2")
	}

	if meetsDifficulty("0abc", 2) {
		t.Fatal("hash with one leading zero should not meet difficulty 2")
	}
}
