package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1broseidon/gridsnap/internal/grid"
)

var (
	previewBounds  string
	previewGap     int
	previewEdgeGap int
)

var previewCmd = &cobra.Command{
	Use:     "preview <position>",
	Short:   "Print the rect a position maps to, without touching any window",
	Example: `  gridsnap preview TopRight --bounds 0,0,1920,1080 --gap 10 --edge-gap 20`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := grid.ParsePosition(args[0])
		if err != nil {
			return err
		}
		bounds, err := parseBounds(previewBounds)
		if err != nil {
			return err
		}
		if previewGap < 0 || previewEdgeGap < 0 {
			return fmt.Errorf("gaps must be non-negative (gap=%d, edge-gap=%d)", previewGap, previewEdgeGap)
		}

		rect := grid.Compute(pos, grid.Gaps{Gap: previewGap, EdgeGap: previewEdgeGap}, bounds)
		fmt.Fprintln(cmd.OutOrStdout(), formatRect(pos, rect))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewBounds, "bounds", "", "work area as left,top,right,bottom (right and bottom are read as sizes)")
	previewCmd.Flags().IntVar(&previewGap, "gap", 0, "gap between windows in pixels")
	previewCmd.Flags().IntVar(&previewEdgeGap, "edge-gap", 0, "gap at the screen edges in pixels")
	_ = previewCmd.MarkFlagRequired("bounds")
}

func parseBounds(s string) (grid.DisplayBounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return grid.DisplayBounds{}, fmt.Errorf("invalid bounds %q: want left,top,right,bottom", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid.DisplayBounds{}, fmt.Errorf("invalid bounds %q: %w", s, err)
		}
		v[i] = n
	}
	return grid.DisplayBounds{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
}
