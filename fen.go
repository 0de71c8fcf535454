// fen.go implements the Forsyth-Edwards Notation codec: ParseFEN reads
// a FEN string into a Board, Board.FEN renders the canonical form.
// Grounded on the teacher's fen.go field-splitting and rank/file walk,
// adapted to this module's row-major square numbering and to returning
// errors instead of panicking (spec.md §7: "the parser returns an
// explicit failure indication").

package chesscore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors returned by ParseFEN.
var (
	ErrFieldCount      = errors.New("chesscore: FEN must have 6 space-separated fields")
	ErrPiecePlacement  = errors.New("chesscore: invalid FEN piece placement")
	ErrActiveColor     = errors.New("chesscore: FEN active color must be \"w\" or \"b\"")
	ErrCastlingRights  = errors.New("chesscore: invalid FEN castling availability")
	ErrEnPassant       = errors.New("chesscore: invalid FEN en-passant target")
	ErrHalfmoveClock   = errors.New("chesscore: invalid FEN halfmove clock")
	ErrFullmoveNumber  = errors.New("chesscore: invalid FEN fullmove number")
)

// ParseFEN parses a FEN string into a Board. On success the board is
// validated (see validate); an invalid position is reported as an error
// rather than returned half-built.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, fmt.Errorf("%w: got %d fields", ErrFieldCount, len(fields))
	}

	var b Board
	b.EPFile = -1

	if err := parsePlacement(&b, fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return Board{}, fmt.Errorf("%w: %q", ErrActiveColor, fields[1])
	}

	if err := parseCastling(&b, fields[2]); err != nil {
		return Board{}, err
	}

	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return Board{}, fmt.Errorf("%w: %q", ErrEnPassant, fields[3])
		}
		b.EPFile = sq.Col()
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Board{}, fmt.Errorf("%w: %q", ErrHalfmoveClock, fields[4])
	}
	b.HalfmoveClock = halfmove

	if fullmove, err := strconv.Atoi(fields[5]); err != nil || fullmove < 1 {
		return Board{}, fmt.Errorf("%w: %q", ErrFullmoveNumber, fields[5])
	}

	if err := validate(&b); err != nil {
		return Board{}, err
	}
	return b, nil
}

// letterToCell maps a FEN placement letter to its cell.
func letterToCell(ch byte) (Cell, bool) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	var kind PieceKind
	switch ch {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Cell{}, false
	}
	return Cell{Kind: kind, Color: color}, true
}

// parsePlacement fills the mailbox from the first FEN field. Piece
// placement is given rank 8 downward, file a through h, matching row 0
// = rank 8 in this module's square numbering.
func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrPiecePlacement, len(ranks))
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			switch {
			case ch >= '1' && ch <= '8':
				col += int(ch - '0')
			default:
				cell, ok := letterToCell(ch)
				if !ok {
					return fmt.Errorf("%w: unexpected character %q", ErrPiecePlacement, ch)
				}
				if col >= 8 {
					return fmt.Errorf("%w: rank %d overflows 8 files", ErrPiecePlacement, 8-row)
				}
				b.cells[row*8+col] = cell
				col++
			}
		}
		if col != 8 {
			return fmt.Errorf("%w: rank %d does not cover 8 files", ErrPiecePlacement, 8-row)
		}
	}
	return nil
}

func parseCastling(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			b.Castling[White][Kingside] = true
		case 'Q':
			b.Castling[White][Queenside] = true
		case 'k':
			b.Castling[Black][Kingside] = true
		case 'q':
			b.Castling[Black][Queenside] = true
		default:
			return fmt.Errorf("%w: %q", ErrCastlingRights, field)
		}
	}
	return nil
}

// FEN renders the board as a FEN string. The fullmove field is always
// written as 1, per spec.md §4.3/§6: the core does not track it.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.Grow(72)

	sb.WriteString(serializePlacement(b))
	sb.WriteByte(' ')

	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	any := false
	if b.Castling[White][Kingside] {
		sb.WriteByte('K')
		any = true
	}
	if b.Castling[White][Queenside] {
		sb.WriteByte('Q')
		any = true
	}
	if b.Castling[Black][Kingside] {
		sb.WriteByte('k')
		any = true
	}
	if b.Castling[Black][Queenside] {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	if b.EPFile < 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(epTargetSquare(b).String())
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')

	sb.WriteByte('1')

	return sb.String()
}

// epTargetSquare reconstructs the full en-passant target square from
// the stored file and the side to move.
func epTargetSquare(b *Board) Square {
	return epDestSquare[b.SideToMove][b.EPFile]
}

func serializePlacement(b *Board) string {
	var sb strings.Builder
	sb.Grow(64)

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			cell := b.cells[row*8+col]
			if cell.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(cell.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row != 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
