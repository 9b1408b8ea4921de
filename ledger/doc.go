// Package ledger implements a minimal single-node blockchain with
// brute-force proof-of-work mining, meant for studying how hash chaining
// detects tampering.
//
// # Core Components
//
// Blockchain: An append-only sequence of mined blocks created with a fixed
// difficulty, keeping per-block mining statistics alongside the chain.
//
// Block: A single link holding an opaque payload and a SHA-256 digest of
// its canonical serialization, chained to its predecessor through the
// previous-hash field.
//
// Mine: The proof-of-work search that finalizes a block by finding the
// first nonce whose digest carries the required number of leading zero hex
// digits.
//
// # Security Properties
//
// The chain provides:
//   - Verifiability: Validate re-checks every link, digest and difficulty
//   - Tamper detection: Any payload edit breaks the recomputed digest
//   - Auditability: Blocks and mining statistics stay readable even when
//     the chain is invalid
//
// Nothing here prevents tampering at mutation time: Tamper exists precisely
// to break a block so that Validate can demonstrate detection. There is no
// networking, no consensus and no persistence.
//
// # Usage
//
// Create a chain with NewBlockchain, which mines the genesis block, then
// append payloads with AddBlock. Validate can be called at any time and
// returns a verdict with a human-readable reason instead of an error, since
// an invalid chain is an expected outcome of the tampering demonstration.
package ledger
