package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countMoves(t *testing.T, fen string) int {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	buf := NewMoveBuffer()
	return b.GenerateMoves(buf)
}

func TestGenerateMovesStartPosition(t *testing.T) {
	assert.Equal(t, 20, countMoves(t, StartFEN))
}

func TestGenerateMovesKiwipete(t *testing.T) {
	// The canonical Kiwipete position: every white piece kind has moves,
	// and both castling moves are available.
	assert.Equal(t, 48, countMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
}

func TestGenerateMovesIncludesEnPassantCapture(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	buf := NewMoveBuffer()
	n := b.GenerateMoves(buf)

	d6, _ := ParseSquare("d6")
	e5, _ := ParseSquare("e5")
	found := false
	for i := 0; i < n; i++ {
		if buf[i].From() == e5 && buf[i].To() == d6 && buf[i].Flag() == MoveEnPassant {
			found = true
		}
	}
	assert.True(t, found, "expected an en-passant capture e5xd6 in the generated moves")
}

func TestGenerateMovesIncludesAllFourPromotions(t *testing.T) {
	b, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	buf := NewMoveBuffer()
	n := b.GenerateMoves(buf)

	a7, _ := ParseSquare("a7")
	a8, _ := ParseSquare("a8")
	seen := map[PieceKind]bool{}
	for i := 0; i < n; i++ {
		if buf[i].From() == a7 && buf[i].To() == a8 {
			seen[buf[i].Promotion()] = true
		}
	}
	assert.True(t, seen[Queen], "expected promotion to queen")
	assert.True(t, seen[Rook], "expected promotion to rook")
	assert.True(t, seen[Bishop], "expected promotion to bishop")
	assert.True(t, seen[Knight], "expected promotion to knight")
}

func TestGenerateMovesCastlingBlockedWhenCrossedSquareAttacked(t *testing.T) {
	// Black rook on f8's file covers f1, the square the white king must
	// cross to castle kingside; queenside is untouched.
	b, err := ParseFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	buf := NewMoveBuffer()
	n := b.GenerateMoves(buf)

	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")
	c1, _ := ParseSquare("c1")
	var sawKingside, sawQueenside bool
	for i := 0; i < n; i++ {
		if buf[i].From() == e1 && buf[i].To() == g1 && buf[i].Flag() == MoveCastleKingside {
			sawKingside = true
		}
		if buf[i].From() == e1 && buf[i].To() == c1 && buf[i].Flag() == MoveCastleQueenside {
			sawQueenside = true
		}
	}
	assert.False(t, sawKingside, "kingside castling should be blocked: f1 is attacked")
	assert.True(t, sawQueenside, "queenside castling should remain legal")
}

func TestGenerateMovesEndOfListSentinel(t *testing.T) {
	b := StartPosition()
	buf := NewMoveBuffer()
	n := b.GenerateMoves(buf)
	assert.Equal(t, MoveEndOfList, buf[n].Flag())
}
