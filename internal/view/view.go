// Package view displays a key matrix in the terminal.
package view

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/saylorsolutions/xormatrix/pkg/matrix"
)

// Table builds a bordered table of the matrix.
// Row 0 and column 0 hold indices, so the cell at (row, col) in the matrix is at (row+1, col+1) in the table.
func Table(m *matrix.Matrix, title string) *tview.Table {
	table := tview.NewTable().
		SetBorders(true).
		SetFixed(1, 1)
	table.SetBorder(true)
	table.SetTitle(fmt.Sprintf(" %s (%d×%d) ", title, m.Size(), m.Size()))

	table.SetCell(0, 0, tview.NewTableCell("").SetSelectable(false))
	for i := 0; i < m.Size(); i++ {
		idx := strconv.Itoa(i)
		table.SetCell(0, i+1, header(idx))
		table.SetCell(i+1, 0, header(idx))
	}
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			cell := tview.NewTableCell(fmt.Sprintf("%3d", m.At(row, col))).
				SetAlign(tview.AlignRight)
			table.SetCell(row+1, col+1, cell)
		}
	}
	return table
}

func header(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(tcell.ColorYellow).
		SetAlign(tview.AlignCenter).
		SetSelectable(false)
}

// Show runs an interactive view of the matrix until the user presses Escape, Enter, or q.
func Show(m *matrix.Matrix, title string) error {
	app := tview.NewApplication()
	table := Table(m, title)
	table.SetDoneFunc(func(tcell.Key) {
		app.Stop()
	})
	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})
	return app.SetRoot(table, true).Run()
}
