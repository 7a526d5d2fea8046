package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"gomoku_exe/internal/domain/gomoku"
)

const (
	margin    = 20.0
	cellSize  = 6.8
	stoneSize = cellSize * 0.42
)

// PDF draws b as a single A4 page: the grid with coordinates, the stones and a
// marker on the last placed stone.
func PDF(w io.Writer, b *gomoku.Board, title string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")

	top := margin + 10
	drawGrid(pdf, top)
	drawStones(pdf, b, top)

	pdf.SetY(top + gomoku.Rows*cellSize + 4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Stones: %d   Status: %s", b.StoneCount(), b.Status()), "", 1, "C", false, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render board: %w", err)
	}
	return pdf.Output(w)
}

// center returns the page position of a cell's intersection.
func center(top float64, cell int) (float64, float64) {
	row, col := gomoku.RowCol(cell)
	return margin + float64(col)*cellSize + cellSize/2, top + float64(row)*cellSize + cellSize/2
}

func drawGrid(pdf *gofpdf.Fpdf, top float64) {
	first, last := cellSize/2, float64(gomoku.Rows-1)*cellSize+cellSize/2

	pdf.SetDrawColor(90, 90, 90)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "", 6)
	for i := 0; i < gomoku.Rows; i++ {
		offset := float64(i)*cellSize + cellSize/2
		pdf.Line(margin+first, top+offset, margin+last, top+offset)
		pdf.Line(margin+offset, top+first, margin+offset, top+last)

		pdf.Text(margin+offset-0.8, top-1, string(rune('a'+i)))
		pdf.Text(margin-5, top+offset+0.8, strconv.Itoa(i+1))
	}
}

func drawStones(pdf *gofpdf.Fpdf, b *gomoku.Board, top float64) {
	pdf.SetLineWidth(0.3)
	for cell := 0; cell < gomoku.Size; cell++ {
		switch b.At(cell) {
		case gomoku.Player1:
			pdf.SetFillColor(20, 20, 20)
		case gomoku.Player2:
			pdf.SetFillColor(250, 250, 250)
		default:
			continue
		}
		x, y := center(top, cell)
		pdf.SetDrawColor(20, 20, 20)
		pdf.Circle(x, y, stoneSize, "FD")
	}

	if last, ok := b.LastMove(); ok {
		x, y := center(top, last)
		pdf.SetFillColor(200, 30, 30)
		pdf.SetDrawColor(200, 30, 30)
		pdf.Circle(x, y, stoneSize/3, "F")
	}
}
