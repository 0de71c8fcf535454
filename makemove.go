// makemove.go applies and unapplies a single move. MakeMove always
// performs the move and returns the state needed to undo it; callers
// that must only accept legal moves check IsOpponentKingAttacked
// afterward and call UnmakeMove if it returns true, the same
// make-then-maybe-unmake protocol spec.md §4.6 describes. Grounded on
// the teacher's position.go Position.MakeMove flag-dispatch switch,
// rebuilt around changePiece and a typed Persistence record since the
// teacher undoes moves by replaying a stored FEN snapshot instead.

package chesscore

// Persistence holds everything MakeMove destroys that UnmakeMove needs
// back: the position's own state plus whatever stood on the
// destination square before a normal capture.
type Persistence struct {
	Castling      [2][2]bool
	EPFile        int
	HalfmoveClock int
	Captured      Cell
}

// MakeMove applies m to the board and returns a Persistence snapshot
// for UnmakeMove. It does not check legality: a caller that must reject
// moves leaving its own king in check should call
// IsOpponentKingAttacked immediately afterward and unmake on true.
func (b *Board) MakeMove(m Move) Persistence {
	p := Persistence{
		Castling:      b.Castling,
		EPFile:        b.EPFile,
		HalfmoveClock: b.HalfmoveClock,
	}

	us := b.SideToMove
	them := us.Opposite()
	from, to := m.From(), m.To()
	moving := b.cells[from]

	b.EPFile = -1
	b.HalfmoveClock++
	if moving.Kind == Pawn {
		b.HalfmoveClock = 0
	}

	switch m.Flag() {
	case MoveNull:
		b.SideToMove = them
		return p

	case MoveEnPassant:
		captured := epCapturedSquare[us][to.Col()]
		p.Captured = b.cells[captured]
		b.changePiece(captured, emptyCell)
		b.changePiece(from, emptyCell)
		b.changePiece(to, moving)

	case MoveCastleKingside, MoveCastleQueenside:
		side := Kingside
		if m.Flag() == MoveCastleQueenside {
			side = Queenside
		}
		rookFrom := castleRookHome[us][side]
		rookTo := castleRookDest[us][side]
		rook := b.cells[rookFrom]
		b.changePiece(from, emptyCell)
		b.changePiece(to, moving)
		b.changePiece(rookFrom, emptyCell)
		b.changePiece(rookTo, rook)

	default:
		p.Captured = b.cells[to]
		if !p.Captured.IsEmpty() {
			b.HalfmoveClock = 0
		}
		b.changePiece(from, emptyCell)
		if promo := m.Promotion(); promo != NoPiece {
			b.changePiece(to, Cell{Kind: promo, Color: us})
		} else {
			b.changePiece(to, moving)
		}
		if m.IsDoublePush() {
			b.EPFile = to.Col()
		}
	}

	if moving.Kind == King {
		b.Castling[us][Kingside] = false
		b.Castling[us][Queenside] = false
	}
	clearCastlingOnRookMove(b, us, from)
	clearCastlingOnRookMove(b, them, to)

	b.SideToMove = them
	return p
}

// clearCastlingOnRookMove drops a color's castling right on a side
// whose rook square was just vacated or captured on.
func clearCastlingOnRookMove(b *Board, c Color, sq Square) {
	if sq == castleRookHome[c][Kingside] {
		b.Castling[c][Kingside] = false
	}
	if sq == castleRookHome[c][Queenside] {
		b.Castling[c][Queenside] = false
	}
}

// UnmakeMove reverses m, restoring the board to the state it was in
// before the matching MakeMove call that returned p.
func (b *Board) UnmakeMove(m Move, p Persistence) {
	them := b.SideToMove
	us := them.Opposite()
	b.SideToMove = us

	from, to := m.From(), m.To()

	switch m.Flag() {
	case MoveNull:
		// position is otherwise untouched

	case MoveEnPassant:
		pawn := b.cells[to]
		b.changePiece(to, emptyCell)
		b.changePiece(from, pawn)
		b.changePiece(epCapturedSquare[us][to.Col()], p.Captured)

	case MoveCastleKingside, MoveCastleQueenside:
		side := Kingside
		if m.Flag() == MoveCastleQueenside {
			side = Queenside
		}
		rookFrom := castleRookHome[us][side]
		rookTo := castleRookDest[us][side]
		rook := b.cells[rookTo]
		king := b.cells[to]
		b.changePiece(to, emptyCell)
		b.changePiece(rookTo, emptyCell)
		b.changePiece(from, king)
		b.changePiece(rookFrom, rook)

	default:
		moved := b.cells[to]
		if m.Promotion() != NoPiece {
			moved = Cell{Kind: Pawn, Color: us}
		}
		b.changePiece(to, p.Captured)
		b.changePiece(from, moved)
	}

	b.Castling = p.Castling
	b.EPFile = p.EPFile
	b.HalfmoveClock = p.HalfmoveClock
}
