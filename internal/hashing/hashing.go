// Package hashing detects self-play games that end in the same position.
package hashing

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity    int
	size           int
	duplicateCount int
}

// GameSignature stores identifying information about a finished game.
type GameSignature struct {
	Hash     uint64
	Plies    int
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of a final position.
func Signature(b *chess.Board, toMove chess.Colour, plies int) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(b, toMove),
		Plies:    plies,
		WeakHash: WeakHash(b),
	}
}

// CheckAndAdd reports whether sig was seen before, and records it if not.
// Once full, new signatures are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored signatures.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
