// board.go defines Board, the mutable chess position, and the single
// choke point — changePiece — that keeps its three redundant
// representations (mailbox, piece lists, bitboards) in lockstep. The
// teacher keeps bitboards only and answers "what's on this square" by
// scanning twelve bitboards (Position.GetPieceFromSquare); spec.md §3
// mandates the mailbox+piece-list+bitboard triple explicitly, so that
// part is built fresh here, in the teacher's placePiece/removePiece
// choke-point idiom.

package chesscore

// maxPiecesPerKind bounds a single piece list. A side's 8 pawns can add
// at most 8 pieces of one kind by promotion; on top of the 2 knights,
// bishops or rooks a side starts with, that makes 10 at most.
const maxPiecesPerKind = 10

// Board is a chess position: mailbox, piece lists, redundant bitboards,
// side to move, castling rights, en-passant file, and halfmove clock.
type Board struct {
	cells [64]Cell

	pieceList  [2][7][maxPiecesPerKind]Square
	pieceCount [2][7]int
	listIndex  [64]int

	bbPiece [2][7]Bitboard
	bbColor [2]Bitboard
	bbAll   Bitboard

	SideToMove Color
	// Castling[color][side] is true when that color may still castle to
	// that side; it says nothing about whether castling is legal right
	// now (the path may be blocked or attacked).
	Castling [2][2]bool
	// EPFile is the file (0..7) on which an en-passant capture is
	// possible this ply, or -1.
	EPFile int
	// HalfmoveClock counts plies since the last pawn move or capture.
	HalfmoveClock int
}

// ClearBoard returns an empty board: White to move, no castling rights,
// no en-passant target.
func ClearBoard() Board {
	return Board{EPFile: -1}
}

// StartPosition returns the canonical initial chess position.
func StartPosition() Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant known to be valid; a parse
		// failure here means Init was never called or the table
		// generation is broken, not bad input.
		panic("chesscore: start position FEN failed to parse: " + err.Error())
	}
	return b
}

// StartFEN is the FEN string for the canonical initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// At returns the cell on the given square.
func (b *Board) At(sq Square) Cell { return b.cells[sq] }

// PieceCount returns how many pieces of (color, kind) are on the board.
func (b *Board) PieceCount(c Color, k PieceKind) int { return b.pieceCount[c][k] }

// PieceSquares returns the squares holding (color, kind) pieces. The
// returned slice aliases Board's internal storage and is only valid
// until the next mutation.
func (b *Board) PieceSquares(c Color, k PieceKind) []Square {
	return b.pieceList[c][k][:b.pieceCount[c][k]]
}

// KingSquare returns the square of the color's king.
func (b *Board) KingSquare(c Color) Square {
	return b.pieceList[c][King][0]
}

// BitboardPiece returns the bitboard of (color, kind) pieces.
func (b *Board) BitboardPiece(c Color, k PieceKind) Bitboard { return b.bbPiece[c][k] }

// BitboardColor returns the bitboard of all of a color's pieces.
func (b *Board) BitboardColor(c Color) Bitboard { return b.bbColor[c] }

// BitboardAll returns the bitboard of all occupied squares.
func (b *Board) BitboardAll() Bitboard { return b.bbAll }

// changePiece is the single mutator through which every board edit
// flows: it removes whatever was on sq from the piece list/bitboards,
// then — if newCell is not empty — adds newCell to them, updating the
// mailbox either way. MakeMove and UnmakeMove make every edit through
// here; only FEN parsing writes the mailbox directly and then calls
// recalcRedundant.
func (b *Board) changePiece(sq Square, newCell Cell) {
	old := b.cells[sq]
	if !old.IsEmpty() {
		b.removeFromLists(sq, old)
		mask := sq.Bitboard()
		b.bbPiece[old.Color][old.Kind] &^= mask
		b.bbColor[old.Color] &^= mask
		b.bbAll &^= mask
	}

	b.cells[sq] = newCell

	if !newCell.IsEmpty() {
		b.addToLists(sq, newCell)
		mask := sq.Bitboard()
		b.bbPiece[newCell.Color][newCell.Kind] |= mask
		b.bbColor[newCell.Color] |= mask
		b.bbAll |= mask
	}
}

// addToLists appends sq to the (color, kind) piece list.
func (b *Board) addToLists(sq Square, cell Cell) {
	idx := b.pieceCount[cell.Color][cell.Kind]
	b.pieceList[cell.Color][cell.Kind][idx] = sq
	b.listIndex[sq] = idx
	b.pieceCount[cell.Color][cell.Kind]++
}

// removeFromLists deletes sq from the (color, kind) piece list using
// the swap-with-last trick: move the last entry into the hole, fix up
// its back-reference, and shrink the count.
func (b *Board) removeFromLists(sq Square, cell Cell) {
	idx := b.listIndex[sq]
	last := b.pieceCount[cell.Color][cell.Kind] - 1
	lastSq := b.pieceList[cell.Color][cell.Kind][last]

	b.pieceList[cell.Color][cell.Kind][idx] = lastSq
	b.listIndex[lastSq] = idx
	b.pieceCount[cell.Color][cell.Kind]--
}

// recalcRedundant rebuilds the piece lists, listIndex, and all
// bitboards from the mailbox. Used after FEN parsing, where the
// mailbox is filled in directly rather than through changePiece.
func (b *Board) recalcRedundant() {
	b.pieceList = [2][7][maxPiecesPerKind]Square{}
	b.pieceCount = [2][7]int{}
	b.bbPiece = [2][7]Bitboard{}
	b.bbColor = [2]Bitboard{}
	b.bbAll = 0

	for s := 0; s < 64; s++ {
		sq := Square(s)
		cell := b.cells[sq]
		if cell.IsEmpty() {
			continue
		}
		b.addToLists(sq, cell)
		mask := sq.Bitboard()
		b.bbPiece[cell.Color][cell.Kind] |= mask
		b.bbColor[cell.Color] |= mask
		b.bbAll |= mask
	}
}
