package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ChartSeries is a named sequence of scores in [0, 100].
type ChartSeries struct {
	Name   string
	Values []float64
}

// Chart draws score series on a shared 0-100 axis using braille dots.
// Each cell holds 2x4 dots.
type Chart struct {
	Title    string
	Width    int
	Height   int
	UseColor bool
}

const (
	defaultChartHeight = 8
	minChartWidth      = 10
	fallbackWidth      = 80
	chartAxis          = " │ "
	scoreMax           = 100.0
)

var seriesColors = []lipgloss.Color{"6", "5", "3", "2", "4"}

// Box-drawing runes are ambiguous-width; the axis is always drawn narrow.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// ChartWidthFor computes the plot area width that fits in totalWidth
// columns. A non-positive totalWidth uses an 80-column terminal.
func ChartWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = fallbackWidth
	}
	axis := narrow.StringWidth(axisLabel(scoreMax)) + narrow.StringWidth(chartAxis)
	return max(totalWidth-axis, minChartWidth)
}

// Render writes the chart. Series without values are skipped.
func (c Chart) Render(w io.Writer, series []ChartSeries) error {
	width := max(c.Width, minChartWidth)
	height := c.Height
	if height <= 0 {
		height = defaultChartHeight
	}

	var layers [][][]uint8
	var names []string
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		layers = append(layers, plotLayer(resample(s.Values, width), width, height))
		names = append(names, s.Name)
	}
	if len(layers) == 0 {
		return nil
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(c.Title + "\n")
	}
	for y := 0; y < height; y++ {
		out.WriteString(rowLabel(y, height))
		out.WriteString(chartAxis)
		for x := 0; x < width; x++ {
			mask, owner := mergeCell(layers, x, y)
			out.WriteString(c.paint(string(rune(0x2800+int(mask))), owner))
		}
		out.WriteByte('\n')
	}
	legend := make([]string, len(names))
	for i, name := range names {
		legend[i] = c.paint("⣿ "+name, i)
	}
	out.WriteString("Legend: " + strings.Join(legend, "  ") + "\n\n")
	_, err := fmt.Fprint(w, out.String())
	return err
}

func (c Chart) paint(s string, owner int) string {
	if !c.UseColor || owner < 0 {
		return s
	}
	return lipgloss.NewStyle().Foreground(seriesColors[owner%len(seriesColors)]).Render(s)
}

func axisLabel(v float64) string {
	return fmt.Sprintf("%3.0f", v)
}

func rowLabel(y, height int) string {
	blank := strings.Repeat(" ", narrow.StringWidth(axisLabel(scoreMax)))
	switch {
	case y == 0:
		return axisLabel(scoreMax)
	case y == height-1:
		return axisLabel(0)
	case height > 2 && y == height/2:
		return axisLabel(scoreMax / 2)
	default:
		return blank
	}
}

// plotLayer connects consecutive points with straight dot lines.
func plotLayer(values []float64, width, height int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	dotRows := height * 4
	prevX, prevY := -1, -1
	for i, v := range values {
		x := i * 2
		y := scoreToDotRow(v, dotRows)
		if prevX < 0 {
			setDot(cells, x, y)
		} else {
			bresenham(prevX, prevY, x, y, func(px, py int) { setDot(cells, px, py) })
		}
		prevX, prevY = x, y
	}
	return cells
}

func scoreToDotRow(v float64, dotRows int) int {
	v = math.Max(0, math.Min(scoreMax, v))
	row := int(math.Round((1 - v/scoreMax) * float64(dotRows-1)))
	return max(0, min(row, dotRows-1))
}

// mergeCell ORs the dots of every layer; the first layer with a dot owns the
// cell colour.
func mergeCell(layers [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, cells := range layers {
		if m := cells[y][x]; m != 0 {
			if owner < 0 {
				owner = i
			}
			mask |= m
		}
	}
	return mask, owner
}

// Braille dot bits indexed by [column][row] within a cell.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func setDot(cells [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if x < 0 || y < 0 || cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	cells[cy][cx] |= dotBits[x%2][y%4]
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// resample stretches or averages values to exactly width points.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	n := len(values)
	switch {
	case n == width:
		copy(out, values)
	case n > width:
		for i := range out {
			start := i * n / width
			end := max((i+1)*n/width, start+1)
			out[i] = mean(values[start:end])
		}
	case n == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(n-1) / float64(width-1)
			idx := int(pos)
			if idx >= n-1 {
				out[i] = values[n-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}
