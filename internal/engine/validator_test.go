package engine

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewValidator(t *testing.T) {
	t.Run("nil config selects defaults", func(t *testing.T) {
		v, err := NewValidator(nil, NewGame(chess.Standard))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, v.rules.Geometry, chess.Standard)
	})

	t.Run("game context is required", func(t *testing.T) {
		v, err := NewValidator(config.NewConfig(), nil)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		testutil.AssertTrue(t, v == nil, "no validator on error")
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := config.NewConfigBuilder().WithGeometry(0, 8).Build()
		_, err := NewValidator(cfg, NewGame(chess.Standard))
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	})
}

func TestGenerateFor_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from      string
		want      map[string]chess.MoveKind
		frontline bool
	}{
		{
			name: "pawn on its start rank",
			fen:  InitialFEN,
			from: "e2",
			want: map[string]chess.MoveKind{
				"e3": chess.Step,
				"e4": chess.DoublePawn,
				"d3": chess.NoMove,
				"f3": chess.NoMove,
			},
			frontline: true,
		},
		{
			name: "castling both ways",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: "e1",
			want: map[string]chess.MoveKind{
				"g1": chess.Castling,
				"c1": chess.Castling,
				"f1": chess.Step,
				"d1": chess.Step,
				"e2": chess.Step,
			},
			frontline: true,
		},
		{
			name: "castling through an attacked cell",
			fen:  "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			from: "e1",
			want: map[string]chess.MoveKind{
				"g1": chess.Blocked,
				"f1": chess.Blocked,
				"c1": chess.Castling,
				"f2": chess.Capture,
			},
			frontline: true,
		},
		{
			name: "castling out of check",
			fen:  "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1",
			want: map[string]chess.MoveKind{
				"g1": chess.Blocked,
				"c1": chess.Blocked,
				"e2": chess.Blocked,
				"f1": chess.Step,
				"d1": chess.Step,
			},
			frontline: true,
		},
		{
			name: "queen side rook passes an attacked cell",
			fen:  "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1",
			want: map[string]chess.MoveKind{
				"c1": chess.Castling,
				"g1": chess.Castling,
			},
			frontline: true,
		},
		{
			name: "castling with the path occupied",
			fen:  "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1",
			from: "e1",
			want: map[string]chess.MoveKind{
				"g1": chess.NoMove,
				"c1": chess.NoMove,
			},
			frontline: true,
		},
		{
			name: "castling without the right",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w - - 0 1",
			from: "e1",
			want: map[string]chess.MoveKind{
				"g1": chess.NoMove,
				"c1": chess.NoMove,
				"f1": chess.Step,
			},
			frontline: true,
		},
		{
			name: "en passant",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			from: "e5",
			want: map[string]chess.MoveKind{
				"d6": chess.EnPassant,
				"e6": chess.Step,
				"f6": chess.NoMove,
			},
			frontline: true,
		},
		{
			name: "en passant exposing the king",
			fen:  "8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 1",
			from: "e5",
			want: map[string]chess.MoveKind{
				"d6": chess.Blocked,
				"e6": chess.Step,
			},
			frontline: true,
		},
		{
			name: "pinned bishop",
			fen:  "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			from: "e2",
			want: map[string]chess.MoveKind{
				"d3": chess.Blocked,
				"a6": chess.Blocked,
				"f3": chess.Blocked,
				"h5": chess.Blocked,
				"d1": chess.Blocked,
				"f1": chess.Blocked,
			},
			frontline: false,
		},
		{
			name: "pinned rook slides along the pin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: map[string]chess.MoveKind{
				"e3": chess.Step,
				"e7": chess.Capture,
				"d2": chess.Blocked,
				"f2": chess.Blocked,
			},
			frontline: true,
		},
		{
			name: "promotion by step and capture",
			fen:  "3r3k/4P3/8/8/8/8/8/K7 w - - 0 1",
			from: "e7",
			want: map[string]chess.MoveKind{
				"e8": chess.Promotion,
				"d8": chess.Promotion,
				"f8": chess.NoMove,
			},
			frontline: true,
		},
		{
			name: "black pawn double step",
			fen:  "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1",
			from: "d7",
			want: map[string]chess.MoveKind{
				"d6": chess.Step,
				"d5": chess.DoublePawn,
			},
			frontline: true,
		},
		{
			name: "opposing piece yields nothing",
			fen:  InitialFEN,
			from: "e7",
			want: map[string]chess.MoveKind{
				"e6": chess.NoMove,
				"e5": chess.NoMove,
			},
			frontline: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, v := newPosition(t, tt.fen)
			from := cell(t, tt.from)

			testutil.AssertNoError(t, v.GenerateFor(board, from))
			for to, want := range tt.want {
				testutil.AssertEqual(t, v.Target(cell(t, to)), want, "Target(%s)", to)
			}
			testutil.AssertEqual(t, v.IsFrontline(from), tt.frontline, "IsFrontline(%s)", tt.from)
		})
	}
}

func TestGenerate_InitialPosition(t *testing.T) {
	board, _, v := newPosition(t, InitialFEN)
	before := board.Copy()

	testutil.AssertNoError(t, v.Generate(board))

	testutil.AssertTrue(t, board.Equal(before), "Generate must not modify the board")
	testutil.AssertEqual(t, len(v.Frontline()), 10)
	testutil.AssertEqual(t, len(v.Targets()), 16)
	testutil.AssertEqual(t, v.Target(cell(t, "f3")), chess.Step)
	testutil.AssertEqual(t, v.Target(cell(t, "h4")), chess.DoublePawn)
	testutil.AssertTrue(t, v.Probes() >= 20, "one opponent pass per candidate")
}

// TestGenerate_FrontlineMatchesMoves checks that a source cell is frontline
// exactly when one of its candidates was not blocked.
func TestGenerate_FrontlineMatchesMoves(t *testing.T) {
	for _, fen := range []string{InitialFEN, kiwipeteFEN, endgameFEN, mirrorFEN, talkchessFEN} {
		board, game, v := newPosition(t, fen)
		geom := board.Geometry()
		for c := chess.Cell(0); int(c) < geom.Size(); c++ {
			p := board.Get(c)
			if p.IsEmpty() || p.Colour() != game.CurrentSide() {
				continue
			}
			testutil.AssertNoError(t, v.GenerateFor(board, c))
			legal := false
			for _, m := range v.Moves() {
				testutil.AssertEqual(t, m.From, c)
				if m.Kind != chess.Blocked {
					legal = true
				}
			}
			testutil.AssertEqual(t, v.IsFrontline(c), legal, "%s: IsFrontline(%s)", fen, geom.CellName(c))
		}
	}
}

func TestValidator_InCheck(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial", InitialFEN, false},
		{"rook check", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", true},
		{"pawn in front", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", false},
		{"knight check", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", true},
		{"blocked slider", "4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"black in check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, v := newPosition(t, tt.fen)
			got, err := v.InCheck(board)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestValidator_Invariants(t *testing.T) {
	board, _, v := newPosition(t, InitialFEN)

	t.Run("target out of range", func(t *testing.T) {
		testutil.AssertPanicsWith(t, errors.ErrCellOutOfRange, func() { v.Target(64) })
		testutil.AssertPanicsWith(t, errors.ErrCellOutOfRange, func() { v.IsFrontline(-1) })
	})

	t.Run("generate for out of range cell", func(t *testing.T) {
		err := v.GenerateFor(board, 64)
		testutil.AssertErrorIs(t, err, errors.ErrCellOutOfRange)
		testutil.AssertTrue(t, errors.IsInvariant(err))
	})

	t.Run("geometry mismatch", func(t *testing.T) {
		small := chess.NewBoard(chess.Geometry{Files: 6, Ranks: 6})
		testutil.AssertErrorIs(t, v.Generate(small), errors.ErrGeometryMismatch)
		testutil.AssertErrorIs(t, v.Generate(nil), errors.ErrGeometryMismatch)
		_, err := v.InCheck(small)
		testutil.AssertErrorIs(t, err, errors.ErrGeometryMismatch)
	})

	t.Run("disabled kind", func(t *testing.T) {
		cfg := config.NewConfigBuilder().
			WithKinds(chess.Rook, chess.King).
			WithPromotionKinds().
			WithVerbosity(0).
			Build()
		game := NewGame(chess.Standard)
		rv, err := NewValidator(cfg, game)
		testutil.AssertNoError(t, err)

		b := testutil.MustBoard(t, chess.Standard, testutil.Placement{
			"e1": chess.W(chess.King),
			"e8": chess.B(chess.King),
			"b1": chess.W(chess.Knight),
		})
		err = rv.Generate(b)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidKind)
		testutil.AssertTrue(t, errors.IsInvariant(err))
	})
}

func TestValidator_Logging(t *testing.T) {
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithLogFile(log).WithVerbosity(2).Build()
	board, game := NewInitialPosition()
	v, err := NewValidator(cfg, game)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, v.Generate(board))
	testutil.AssertContains(t, log.String(), "generate White: 20 candidates, 10 frontline")
}

func TestGenerate_SmallBoard(t *testing.T) {
	cfg := config.NewConfigBuilder().WithGeometry(6, 6).WithVerbosity(0).Build()
	geom := cfg.Rules.Geometry
	board, game, err := ParseFEN(geom, "rnqknr/pppppp/6/6/PPPPPP/RNQKNR w - - 0 1")
	testutil.AssertNoError(t, err)
	v, err := NewValidator(cfg, game)
	testutil.AssertNoError(t, err)

	moves, err := LegalMoves(v, board)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 16)

	testutil.AssertNoError(t, v.GenerateFor(board, testutil.MustCell(t, geom, "a2")))
	testutil.AssertEqual(t, v.Target(testutil.MustCell(t, geom, "a3")), chess.Step)
	testutil.AssertEqual(t, v.Target(testutil.MustCell(t, geom, "a4")), chess.DoublePawn)

	// black pawns promote on the first rank of the small board
	promo, game, err := ParseFEN(geom, "3k2/6/6/6/p5/3K2 b - - 0 1")
	testutil.AssertNoError(t, err)
	v, err = NewValidator(cfg, game)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, v.GenerateFor(promo, testutil.MustCell(t, geom, "a2")))
	testutil.AssertEqual(t, v.Target(testutil.MustCell(t, geom, "a1")), chess.Promotion)
}

func TestGenerate_ShortCastlingWalk(t *testing.T) {
	// one crossed cell is simulated: an attack on the second one is ignored
	cfg := config.NewConfigBuilder().WithCastlingKingSteps(1).WithVerbosity(0).Build()
	board, game, err := NewPositionFromFEN("4k1r1/8/8/8/8/8/8/4K2R w K - 0 1")
	testutil.AssertNoError(t, err)
	v, err := NewValidator(cfg, game)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, v.GenerateFor(board, cell(t, "e1")))
	testutil.AssertEqual(t, v.Target(cell(t, "g1")), chess.Castling)

	_, _, v = newPosition(t, "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1")
	testutil.AssertNoError(t, v.GenerateFor(board, cell(t, "e1")))
	testutil.AssertEqual(t, v.Target(cell(t, "g1")), chess.Blocked)
}

func TestGenerate_CastlingNeedsKingHome(t *testing.T) {
	board, game, v := newPosition(t, castlingFEN)
	home, ok := game.KingHome(chess.White)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, home, cell(t, "e1"))

	game.SetKingHome(chess.White, chess.NoCell)
	testutil.AssertNoError(t, v.GenerateFor(board, cell(t, "e1")))
	testutil.AssertEqual(t, v.Target(cell(t, "g1")), chess.NoMove)
	testutil.AssertEqual(t, v.Target(cell(t, "c1")), chess.NoMove)
	testutil.AssertEqual(t, v.Target(cell(t, "f1")), chess.Step)
}
