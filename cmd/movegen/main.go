// movegen lists the legal moves of a chess position, counts perft nodes and
// draws generation passes.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/diagram"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movegen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := run(cfg, requestFromFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run sets up the requested position and writes the requested reports to
// cfg.OutputFile.
func run(cfg *config.Config, req request) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Logf(2, "rules: %dx%d board, promote to %s, castling checks %d cells\n",
		cfg.Rules.Geometry.Files, cfg.Rules.Geometry.Ranks,
		formatKinds(cfg.Rules.PromotionKinds), cfg.Rules.CastlingKingSteps)

	if req.fenFile != "" {
		return runBatch(cfg, req)
	}

	board, game, err := engine.ParseFEN(cfg.Rules.Geometry, req.fen)
	if err != nil {
		return errors.Wrap(err, "setting up position")
	}
	v, err := engine.NewValidator(cfg, game)
	if err != nil {
		return err
	}
	out := cfg.OutputFile

	if req.perft > 0 {
		return reportPerft(cfg, v, game, board, req)
	}

	if req.from != "" {
		from, err := board.Geometry().ParseCell(req.from)
		if err != nil {
			return errors.Wrapf(err, "parsing -from %q", req.from)
		}
		if err := v.GenerateFor(board, from); err != nil {
			return err
		}
		for _, m := range v.Moves() {
			fmt.Fprintf(out, "%s %v\n", m.Name(board.Geometry()), m.Kind)
		}
	} else {
		if err := reportMoves(out, v, game, board, req.json); err != nil {
			return err
		}
		// reportMoves ran its own passes; regenerate for the diagrams
		if err := v.Generate(board); err != nil {
			return err
		}
	}

	if req.board {
		fmt.Fprint(out, diagram.Annotated(board, v))
		for _, line := range diagram.Legend(board.Geometry(), v) {
			fmt.Fprintln(out, line)
		}
	}
	if req.svgPath != "" {
		if err := writeSVG(req.svgPath, board, v); err != nil {
			return err
		}
		cfg.Logf(1, "diagram written to %s\n", req.svgPath)
	}
	return nil
}

// newReportWriter returns the writer for move reports on out.
func newReportWriter(out io.Writer, asJSON bool) output.ReportWriter {
	if asJSON {
		return output.NewJSONWriterSingle(out)
	}
	return output.NewTextWriter(out)
}

// reportMoves writes every legal move followed by the position status.
func reportMoves(out io.Writer, v *engine.Validator, game *engine.Game, board *chess.Board, asJSON bool) error {
	r, err := output.NewReport(v, game, board)
	if err != nil {
		return err
	}
	w := newReportWriter(out, asJSON)
	if err := w.WriteReport(r); err != nil {
		return err
	}
	return w.Close()
}

// runBatch reports every position of a file holding one FEN per line.
// Blank lines and lines starting with '#' are skipped.
func runBatch(cfg *config.Config, req request) error {
	file, err := os.Open(req.fenFile)
	if err != nil {
		return errors.Wrapf(err, "opening %s", req.fenFile)
	}
	defer file.Close()

	var w output.ReportWriter = output.NewTextWriter(cfg.OutputFile)
	if req.json {
		w = output.NewJSONWriter(cfg.OutputFile)
	}

	count := 0
	scanner := bufio.NewScanner(file)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		board, game, err := engine.ParseFEN(cfg.Rules.Geometry, line)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", req.fenFile, lineNo)
		}
		v, err := engine.NewValidator(cfg, game)
		if err != nil {
			return err
		}
		r, err := output.NewReport(v, game, board)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", req.fenFile, lineNo)
		}
		if err := w.WriteReport(r); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", req.fenFile)
	}
	cfg.Logf(1, "%d positions reported\n", count)
	return w.Close()
}

// reportPerft writes the perft count, optionally divided by first move.
func reportPerft(cfg *config.Config, v *engine.Validator, game *engine.Game, board *chess.Board, req request) error {
	out := cfg.OutputFile
	if req.divide {
		var counts map[string]uint64
		var err error
		if req.workers > 1 {
			counts, err = engine.ParallelDivide(cfg, game, board, req.perft, req.workers)
		} else {
			counts, err = engine.Divide(v, game, board, req.perft)
		}
		if err != nil {
			return err
		}
		var total uint64
		for _, line := range diagram.SortedKeys(counts) {
			fmt.Fprintf(out, "%s: %d\n", line, counts[line])
			total += counts[line]
		}
		fmt.Fprintf(out, "\nNodes searched: %d\n", total)
		return nil
	}

	nodes, err := engine.Perft(v, game, board, req.perft)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "perft(%d) = %d\n", req.perft, nodes)
	return nil
}

// writeSVG writes the diagram of the last generation pass to path.
func writeSVG(path string, board *chess.Board, pass diagram.Pass) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	diagram.SVG(file, board, pass)
	return file.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movegen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists the legal moves of a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove kinds:\n")
	fmt.Fprintf(os.Stderr, "  Step, DoublePawn, Capture, Castling, EnPassant, Promotion\n")
	fmt.Fprintf(os.Stderr, "  Blocked (with -from: a candidate that would leave the king attacked)\n")
}
