package hashing

import (
	"hash/fnv"
	"math/bits"
	"math/rand"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

const tableSquares = chess.BoardSize * chess.BoardSize

var (
	zobristPiece [2 * int(chess.NumKinds)][tableSquares]uint64
	zobristSide  uint64 // XORed in when Black is to move
)

func init() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
}

func pieceKey(p *chess.Piece, sq int) uint64 {
	code := int(p.Colour)*int(chess.NumKinds) + int(p.Kind)
	key := zobristPiece[code][sq%tableSquares]
	// Boards larger than 8x8 reuse the table with a rotation per wrap.
	return bits.RotateLeft64(key, sq/tableSquares)
}

// GenerateZobristHash returns the Zobrist hash of the board with toMove
// to play.
func GenerateZobristHash(b *chess.Board, toMove chess.Colour) uint64 {
	var key uint64
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if p := b.PieceAt(chess.Pos(row, col)); p != nil {
				key ^= pieceKey(p, row*b.Cols()+col)
			}
		}
	}
	if toMove == chess.Black {
		key ^= zobristSide
	}
	return key
}

// WeakHash is an independent FNV hash of the placement string, used to
// confirm Zobrist matches.
func WeakHash(b *chess.Board) uint32 {
	h := fnv.New32a()
	h.Write([]byte(chess.FormatPlacement(b))) //nolint:errcheck // hash writes never fail
	return h.Sum32()
}
