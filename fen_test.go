package chesscore

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	testcases := []struct {
		name string
		fen  string
		want string
	}{
		{"initial position", StartFEN, StartFEN},
		{"kiwipete",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		},
		{"en passant target",
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1",
		},
		{"no castling rights, fullmove always emitted as 1",
			"4k3/8/8/8/8/8/8/4K3 w - - 5 10",
			"4k3/8/8/8/8/8/8/4K3 w - - 5 1",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) returned error: %v", tc.fen, err)
			}
			if got := b.FEN(); got != tc.want {
				t.Fatalf("FEN() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	testcases := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w - -"},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflows files", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece letter", "8/8/8/8/8/8/8/7x w - - 0 1"},
		{"bad active color", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling letter", "8/8/8/8/8/8/8/8 w XQkq - 0 1"},
		{"bad en passant square", "8/8/8/8/8/8/8/8 w - z9 0 1"},
		{"non-numeric halfmove", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"non-numeric fullmove", "8/8/8/8/8/8/8/8 w - - 0 x"},
		{"missing white king", "8/8/8/8/8/8/8/4k3 w - - 0 1"},
		{"two white kings", "4K3/8/8/8/8/8/8/4Kk2 w - - 0 1"},
		{"pawn on first rank", "4k3/8/8/8/8/8/8/4KP2 w - - 0 1"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFEN(tc.fen); err == nil {
				t.Fatalf("ParseFEN(%q) succeeded, want error", tc.fen)
			}
		})
	}
}

func TestParseFENRepairsStaleCastlingRights(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN returned error: %v", err)
	}
	if b.Castling[White][Kingside] {
		t.Fatal("kingside castling right should be cleared: no rook on h1")
	}
	if !b.Castling[White][Queenside] {
		t.Fatal("queenside castling right should survive: rook is on a1")
	}
}

func TestParseFENRepairsStaleEnPassant(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - e6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN returned error: %v", err)
	}
	if b.EPFile != -1 {
		t.Fatalf("EPFile = %d, want -1 (no black pawn on e5 to capture)", b.EPFile)
	}
}

func TestParseFENRejectsOpponentLeftInCheck(t *testing.T) {
	// White to move, but black's own king sits in check from the white
	// rook on the open e-file: black must have just moved into check.
	_, err := ParseFEN("4k3/8/8/8/8/8/8/K3R3 w - - 0 1")
	if err == nil {
		t.Fatal("ParseFEN succeeded, want error: side not to move is in check")
	}
}
