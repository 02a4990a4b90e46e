package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// JSONPosition represents a report in JSON format.
type JSONPosition struct {
	FEN    string     `json:"fen"`
	ToMove string     `json:"toMove"` // "white" or "black"
	Status string     `json:"status"`
	Count  int        `json:"count"`
	Moves  []JSONMove `json:"moves"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Kind      string `json:"kind"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report) *JSONPosition {
	jp := &JSONPosition{
		FEN:    r.FEN,
		ToMove: strings.ToLower(r.Side.String()),
		Status: r.Status.String(),
		Count:  len(r.Moves),
		Moves:  make([]JSONMove, 0, len(r.Moves)),
	}
	for _, m := range r.Moves {
		jp.Moves = append(jp.Moves, convertMove(m, r.Geometry))
	}
	return jp
}

func convertMove(m chess.Move, geom chess.Geometry) JSONMove {
	jm := JSONMove{
		UCI:  m.Name(geom),
		From: geom.CellName(m.From),
		To:   geom.CellName(m.To),
		Kind: m.Kind.String(),
	}
	if m.Kind == chess.Promotion {
		jm.Promotion = strings.ToLower(m.Promotion.String())
	}
	return jm
}
