// movegen.go generates pseudo-legal moves: every move a piece could
// make by its own movement rule, including moves that would leave the
// mover's own king in check. Legality is the caller's job, via MakeMove
// + IsOpponentKingAttacked (spec.md §4.5 Non-goal: no pin-aware
// filtering here). Grounded on the teacher's movegen.go per-piece-kind
// generation functions, restructured to walk piece lists instead of
// popping bitboards, matching this module's mailbox+piece-list Board.

package chesscore

// GenerateMoves appends every pseudo-legal move in the position to
// moves, starting at index 0, terminated by [EndOfListMove]. moves must
// have at least [MoveBufferSize] capacity; see [NewMoveBuffer].
// Returns the number of moves written, not counting the sentinel.
func (b *Board) GenerateMoves(moves []Move) int {
	n := 0
	us := b.SideToMove
	them := us.Opposite()
	friendly := b.bbColor[us]
	enemy := b.bbColor[them]
	occupied := b.bbAll

	n = genPawnMoves(b, us, them, occupied, enemy, moves, n)
	n = genKnightMoves(b, us, friendly, moves, n)
	n = genSliderMoves(b, us, Bishop, diagonalDirs, friendly, occupied, moves, n)
	n = genSliderMoves(b, us, Rook, orthogonalDirs, friendly, occupied, moves, n)
	n = genSliderMoves(b, us, Queen, allDirs, friendly, occupied, moves, n)
	n = genKingMoves(b, us, friendly, moves, n)
	n = genCastling(b, us, occupied, moves, n)

	moves[n] = EndOfListMove
	return n
}

var allDirs = []int{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

const promoRank0 = 0
const promoRank7 = 7

func appendPromotions(moves []Move, n int, from, to Square) int {
	moves[n] = NewPromotionMove(from, to, Queen)
	n++
	moves[n] = NewPromotionMove(from, to, Rook)
	n++
	moves[n] = NewPromotionMove(from, to, Bishop)
	n++
	moves[n] = NewPromotionMove(from, to, Knight)
	n++
	return n
}

func genPawnMoves(b *Board, us, them Color, occupied, enemy Bitboard, moves []Move, n int) int {
	promoteFrom := pawnPromoteFrom[us]

	for _, from := range b.PieceSquares(us, Pawn) {
		onPromoRank := promoteFrom.Test(from)

		if to := pawnPush[us][from]; to != NoSquare && !occupied.Test(to) {
			if onPromoRank {
				n = appendPromotions(moves, n, from, to)
			} else {
				moves[n] = NewMove(from, to, MoveNormal)
				n++
				if dbl := pawnDoublePush[us][from]; dbl != NoSquare && !occupied.Test(dbl) {
					moves[n] = NewDoublePushMove(from, dbl)
					n++
				}
			}
		}

		if to := pawnCaptureLeft[us][from]; to != NoSquare {
			if enemy.Test(to) {
				if onPromoRank {
					n = appendPromotions(moves, n, from, to)
				} else {
					moves[n] = NewMove(from, to, MoveNormal)
					n++
				}
			} else if b.EPFile >= 0 && to == epDestSquare[us][b.EPFile] {
				moves[n] = NewMove(from, to, MoveEnPassant)
				n++
			}
		}

		if to := pawnCaptureRight[us][from]; to != NoSquare {
			if enemy.Test(to) {
				if onPromoRank {
					n = appendPromotions(moves, n, from, to)
				} else {
					moves[n] = NewMove(from, to, MoveNormal)
					n++
				}
			} else if b.EPFile >= 0 && to == epDestSquare[us][b.EPFile] {
				moves[n] = NewMove(from, to, MoveEnPassant)
				n++
			}
		}
	}

	return n
}

func genKnightMoves(b *Board, us Color, friendly Bitboard, moves []Move, n int) int {
	for _, from := range b.PieceSquares(us, Knight) {
		list := knightMoves[from]
		for i := 0; i < list.count; i++ {
			to := list.squares[i]
			if !friendly.Test(to) {
				moves[n] = NewMove(from, to, MoveNormal)
				n++
			}
		}
	}
	return n
}

func genKingMoves(b *Board, us Color, friendly Bitboard, moves []Move, n int) int {
	from := b.KingSquare(us)
	list := kingMoves[from]
	for i := 0; i < list.count; i++ {
		to := list.squares[i]
		if !friendly.Test(to) {
			moves[n] = NewMove(from, to, MoveNormal)
			n++
		}
	}
	return n
}

// genSliderMoves generates moves for every piece of kind along dirs,
// walking each ray with the nearest-blocker scan: stop (excluding the
// blocker) at a friendly piece, stop (including the blocker) at an
// enemy piece.
func genSliderMoves(b *Board, us Color, kind PieceKind, dirs []int, friendly, occupied Bitboard, moves []Move, n int) int {
	for _, from := range b.PieceSquares(us, kind) {
		for _, d := range dirs {
			rayLen := dirLen[d][from]
			for i := 0; i < rayLen; i++ {
				to := dirMoves[d][from][i]
				if friendly.Test(to) {
					break
				}
				moves[n] = NewMove(from, to, MoveNormal)
				n++
				if occupied.Test(to) {
					break
				}
			}
		}
	}
	return n
}

// genCastling appends pseudo-legal castling moves: the squares between
// king and rook must be empty, and neither the king's home square nor
// the square it crosses may be attacked. Whether the king's landing
// square is attacked is left to MakeMove + IsOpponentKingAttacked, same
// as every other move.
func genCastling(b *Board, us Color, occupied Bitboard, moves []Move, n int) int {
	them := us.Opposite()
	from := b.KingSquare(us)
	if from != castleKingHome[us] {
		return n
	}
	if IsAttacked(b, them, from) {
		return n
	}

	for _, side := range [2]CastleSide{Kingside, Queenside} {
		if !b.Castling[us][side] {
			continue
		}
		if castleFreeMask[us][side]&occupied != 0 {
			continue
		}
		if IsAttacked(b, them, castleCrossSq[us][side]) {
			continue
		}
		flag := MoveCastleKingside
		if side == Queenside {
			flag = MoveCastleQueenside
		}
		moves[n] = NewMove(from, castleKingDest[us][side], flag)
		n++
	}
	return n
}
