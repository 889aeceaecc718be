package parser

import (
	"fmt"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/xuri/excelize/v2"
)

// fillCache resolves cell fill colours, caching one lookup per style id.
type fillCache struct {
	f      *excelize.File
	colors map[int]string
}

func newFillCache(f *excelize.File) *fillCache {
	return &fillCache{f: f, colors: make(map[int]string)}
}

// cellFill returns the normalized foreground fill colour of a cell ("" for
// no fill). Theme and indexed colours are not resolved.
func (c *fillCache) cellFill(sheetName, cell string) (string, error) {
	styleID, err := c.f.GetCellStyle(sheetName, cell)
	if err != nil {
		return "", fmt.Errorf("failed to read style of %s!%s: %w", sheetName, cell, err)
	}
	if color, ok := c.colors[styleID]; ok {
		return color, nil
	}

	color := ""
	style, err := c.f.GetStyle(styleID)
	if err != nil {
		return "", fmt.Errorf("failed to read style %d: %w", styleID, err)
	}
	if style != nil && len(style.Fill.Color) > 0 {
		color = config.NormalizeColor(style.Fill.Color[0])
	}
	c.colors[styleID] = color
	return color, nil
}
