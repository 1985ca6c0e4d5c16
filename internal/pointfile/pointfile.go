// Package pointfile reads and writes the JSON point files the command line
// tools exchange: either a bare array of [x, y] pairs or an object with a
// "points" field holding one.
package pointfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rigtools/polyline"
)

type file struct {
	Points [][2]float64 `json:"points"`
}

// Read loads the points from the JSON file at path.
func Read(path string) ([]polyline.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses JSON point data.
func Decode(data []byte) ([]polyline.Point, error) {
	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		var f file
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse points: %w", err)
		}
		pairs = f.Points
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no points in input")
	}
	pts := make([]polyline.Point, len(pairs))
	for i, p := range pairs {
		pts[i] = polyline.Pt(p[0], p[1])
	}
	return pts, nil
}

// Write emits points as a bare JSON array of [x, y] pairs.
func Write(w io.Writer, pts []polyline.Point) error {
	pairs := make([][2]float64, len(pts))
	for i, p := range pts {
		pairs[i] = [2]float64{p.X, p.Y}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(pairs)
}
