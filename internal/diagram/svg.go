package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// CellSize is the edge length of one board cell in SVG user units.
const CellSize = 48

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	frontlineRing = "fill:none;stroke:#2a7ab0;stroke-width:3"
	glyphStyle    = "font-family:monospace;font-size:28px;text-anchor:middle;dominant-baseline:central"
	labelStyle    = "font-family:monospace;font-size:12px;fill:#555"
)

// targetFill is the marker colour of each move kind.
var targetFill = map[chess.MoveKind]string{
	chess.Step:       "#3c9d3c",
	chess.DoublePawn: "#3c9d3c",
	chess.Capture:    "#c0392b",
	chess.Castling:   "#8e44ad",
	chess.EnPassant:  "#d35400",
	chess.Promotion:  "#f1c40f",
	chess.Blocked:    "#7f8c8d",
}

// SVG writes board as an SVG diagram. When pass is not nil, its frontline
// cells are outlined and its destinations marked by kind.
func SVG(w io.Writer, board *chess.Board, pass Pass) {
	geom := board.Geometry()
	margin := CellSize / 2
	width := geom.Files*CellSize + margin
	height := geom.Ranks*CellSize + margin

	canvas := svg.New(w)
	canvas.Start(width, height)

	var targets map[chess.Cell]chess.MoveKind
	frontline := make(map[chess.Cell]bool)
	if pass != nil {
		targets = pass.Targets()
		for _, c := range pass.Frontline() {
			frontline[c] = true
		}
	}

	for rank := geom.Ranks - 1; rank >= 0; rank-- {
		y := (geom.Ranks - 1 - rank) * CellSize
		canvas.Text(margin/2, y+CellSize/2, fmt.Sprint(rank+1), labelStyle)
		for file := 0; file < geom.Files; file++ {
			x := margin + file*CellSize
			c := geom.Cell(file, rank)

			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, CellSize, CellSize, fill)
			if frontline[c] {
				canvas.Rect(x+2, y+2, CellSize-4, CellSize-4, frontlineRing)
			}
			if kind, ok := targets[c]; ok && kind != chess.NoMove {
				canvas.Circle(x+CellSize/2, y+CellSize/2, CellSize/6, "fill:"+targetFill[kind]+";fill-opacity:0.7")
			}
			if p := board.Get(c); !p.IsEmpty() {
				canvas.Text(x+CellSize/2, y+CellSize/2, string(chess.Display(p)), glyphStyle+";fill:"+glyphColour(p))
			}
		}
	}
	for file := 0; file < geom.Files; file++ {
		x := margin + file*CellSize + CellSize/2
		canvas.Text(x, geom.Ranks*CellSize+margin/2, string(rune('a'+file)), labelStyle)
	}
	canvas.End()
}

func glyphColour(p chess.Piece) string {
	if p.IsWhite() {
		return "#ffffff;stroke:#000;stroke-width:1"
	}
	return "#000000"
}
