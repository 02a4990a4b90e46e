// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	// Position options
	fenString = flag.String("fen", engine.InitialFEN, "Position to analyse, in FEN")
	fromCell  = flag.String("from", "", "Only generate the moves of the piece on this cell (e.g. e2)")
	fenFile   = flag.String("f", "", "Report every position of this file (one FEN per line)")

	// Rules options
	files       = flag.Int("files", chess.Standard.Files, "Number of board files")
	ranks       = flag.Int("ranks", chess.Standard.Ranks, "Number of board ranks")
	promotions  = flag.String("promote", "QRBN", "Kinds a pawn may promote to, by letter")
	castleSteps = flag.Int("castlesteps", config.DefaultCastlingKingSteps, "Cells a castling king is checked on")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to depth N")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each move")
	workers    = flag.Int("j", 1, "With -divide, number of parallel workers")
	jsonOutput = flag.Bool("json", false, "Write move reports as JSON")
	showBoard  = flag.Bool("board", false, "Print the board with the generated destinations marked")
	svgFile    = flag.String("svg", "", "Write an SVG diagram of the generation pass to this file")

	// Diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity level (0 = quiet, 2 = per-pass summaries)")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// request collects what a single run should produce.
type request struct {
	fen     string
	fenFile string
	from    string
	json    bool
	perft   int
	divide  bool
	workers int
	board   bool
	svgPath string
}

// applyFlags configures cfg from command-line flags.
func applyFlags(cfg *config.Config) error {
	cfg.Rules.Geometry = chess.Geometry{Files: *files, Ranks: *ranks}
	cfg.Rules.CastlingKingSteps = *castleSteps
	kinds, err := parsePromotions(*promotions)
	if err != nil {
		return err
	}
	cfg.Rules.PromotionKinds = kinds

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// requestFromFlags builds the run request from command-line flags.
func requestFromFlags() request {
	return request{
		fen:     *fenString,
		fenFile: *fenFile,
		from:    *fromCell,
		json:    *jsonOutput,
		perft:   *perftDepth,
		divide:  *divide,
		workers: *workers,
		board:   *showBoard,
		svgPath: *svgFile,
	}
}

// parsePromotions converts kind letters such as "QN" to kinds.
func parsePromotions(letters string) ([]chess.Kind, error) {
	var kinds []chess.Kind
	for i := 0; i < len(letters); i++ {
		kind, ok := chess.KindFromLetter(letters[i])
		if !ok {
			return nil, fmt.Errorf("unknown promotion kind %q", letters[i])
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// formatKinds is the inverse of parsePromotions.
func formatKinds(kinds []chess.Kind) string {
	var sb strings.Builder
	for _, k := range kinds {
		sb.WriteByte(k.Letter())
	}
	return sb.String()
}
