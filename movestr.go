// movestr.go renders and parses moves in coordinate notation, e.g.
// "e2e4" or "e7e8q" for a promotion. Grounded on the teacher's
// internal/perft/perft.go move2UCI helper and fen.go's file/rank letter
// tables, adapted to this module's square numbering and to scanning a
// [Board.GenerateMoves] buffer rather than constructing a move from
// scratch.

package chesscore

var promoLetters = [...]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// String renders m in coordinate notation: source square, destination
// square, and a lowercase promotion letter if present. Null and
// end-of-list moves render as "0000", matching UCI's "no move" token.
func (m Move) String() string {
	if m.Flag() == MoveNull || m.Flag() == MoveEndOfList {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != NoPiece {
		s += string(promoLetters[promo])
	}
	return s
}

// ParseMove finds the move in moves (as produced by
// [Board.GenerateMoves], terminated by [EndOfListMove]) whose
// coordinate-notation text matches, e.g. "e2e4" or "e7e8q". Reports
// false if no such move is present.
func ParseMove(moves []Move, text string) (Move, bool) {
	if len(text) < 4 {
		return 0, false
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return 0, false
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return 0, false
	}
	var promo PieceKind = NoPiece
	if len(text) >= 5 {
		switch text[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return 0, false
		}
	}

	for _, m := range moves {
		if m.Flag() == MoveEndOfList {
			break
		}
		if m.From() == from && m.To() == to && m.Promotion() == promo {
			return m, true
		}
	}
	return 0, false
}
