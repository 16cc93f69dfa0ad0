package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/datapeek/datapeek/client"
	"github.com/datapeek/datapeek/model"
)

// ViewerApp is the TUI for browsing a tabular dataset
type ViewerApp struct {
	tviewApp    *tview.Application
	pages       *tview.Pages
	mainLayout  *tview.Flex
	bodyLayout  *tview.Flex
	headerView  *tview.TextView
	indexView   *tview.TextView
	tableView   *tview.TextView
	statusLine  *tview.TextView
	currentFile string
	dataset     model.Dataset
	viewport    *model.Viewport
	lastWidth   int
	lastHeight  int
	flash       string
}

// NewViewerApp creates a new ViewerApp instance
func NewViewerApp() *ViewerApp {
	return &ViewerApp{
		tviewApp: tview.NewApplication(),
		pages:    tview.NewPages(),
	}
}

func (app *ViewerApp) showMainView() {
	app.mainLayout = tview.NewFlex().SetDirection(tview.FlexRow)

	// Create header view
	app.createHeaderView()

	// Create index and table panels
	app.createBodyPanels()

	// Create status line
	app.createStatusLine()

	// Assemble the layout with dynamic header height
	headerHeight := app.getHeaderHeight()
	app.mainLayout.
		AddItem(app.headerView, headerHeight, 0, false).
		AddItem(app.bodyLayout, 0, 1, true).
		AddItem(app.statusLine, 1, 0, false)

	// The viewport is sized on the first draw once the screen size is known.
	app.viewport = model.NewViewport(app.dataset, 1)

	// Add key bindings
	app.mainLayout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.tviewApp.Stop()
			return nil
		case tcell.KeyPgDn:
			app.withViewport(app.viewport.PageForward)
			return nil
		case tcell.KeyPgUp:
			app.withViewport(app.viewport.PageBackward)
			return nil
		case tcell.KeyDown:
			app.withViewport(func() error { app.viewport.ScrollToRow(app.viewport.TopRow() + 1); return nil })
			return nil
		case tcell.KeyUp:
			app.withViewport(func() error { app.viewport.ScrollToRow(app.viewport.TopRow() - 1); return nil })
			return nil
		case tcell.KeyLeft:
			app.withViewport(func() error { app.viewport.ShiftColumns(-1); return nil })
			return nil
		case tcell.KeyRight:
			app.withViewport(func() error { app.viewport.ShiftColumns(1); return nil })
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				app.tviewApp.Stop()
			case 'j':
				app.withViewport(app.viewport.PageForward)
			case 'k':
				app.withViewport(app.viewport.PageBackward)
			case 'h':
				app.withViewport(func() error { app.viewport.ShiftColumns(-1); return nil })
			case 'l':
				app.withViewport(func() error { app.viewport.ShiftColumns(1); return nil })
			case 'g':
				app.withViewport(func() error { app.viewport.ScrollToRow(0); return nil })
			case 'G':
				app.withViewport(func() error { app.viewport.ScrollToRow(app.dataset.RowCount() - 1); return nil })
			case 'c':
				app.copyWindow()
			default:
				return event
			}
			return nil
		}
		return event
	})

	// Re-render whenever the terminal size changes
	app.tviewApp.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		width, height := screen.Size()
		if width != app.lastWidth || height != app.lastHeight {
			app.lastWidth = width
			app.lastHeight = height
			app.handleResize(width, height)
		}
		return false
	})
}

// withViewport runs a navigation action and re-renders the window
func (app *ViewerApp) withViewport(action func() error) {
	app.flash = ""
	if err := action(); err != nil {
		app.flash = err.Error()
	}
	app.renderWindow()
}

func (app *ViewerApp) createHeaderView() {
	app.headerView = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	app.headerView.SetBorder(true).
		SetTitle(" Dataset ").
		SetTitleAlign(tview.AlignLeft)

	var header strings.Builder
	header.WriteString(fmt.Sprintf("[yellow]File:[-] %s  ", filepath.Base(app.currentFile)))
	header.WriteString(fmt.Sprintf("[yellow]Rows:[-] %d  ", app.dataset.RowCount()))
	header.WriteString(fmt.Sprintf("[yellow]Columns:[-] %d", len(app.dataset.ColumnNames())))

	app.headerView.SetText(header.String())
}

func (app *ViewerApp) getHeaderHeight() int {
	if app.headerView == nil {
		return 3
	}
	text := app.headerView.GetText(false)
	lines := strings.Count(text, "\n") + 1
	return lines + 2
}

func (app *ViewerApp) createBodyPanels() {
	app.indexView = tview.NewTextView().
		SetWrap(false)
	app.indexView.SetBorder(true).
		SetTitle(" Index ").
		SetTitleAlign(tview.AlignLeft)

	app.tableView = tview.NewTextView().
		SetWrap(false)
	app.tableView.SetBorder(true).
		SetTitle(" Rows ").
		SetTitleAlign(tview.AlignLeft)

	app.bodyLayout = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(app.indexView, 8, 0, false).
		AddItem(app.tableView, 0, 1, true)
}

func (app *ViewerApp) createStatusLine() {
	app.statusLine = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	app.updateStatusLine()
}

func (app *ViewerApp) updateStatusLine() {
	start, end, err := app.viewportRange()
	status := fmt.Sprintf(" [yellow]Rows:[-] %d-%d of %d  [yellow]Keys:[-] j/k=page, ↑↓=scroll, h/l=columns, g/G=first/last, c=copy, q=quit",
		start, end, app.dataset.RowCount())
	if err != nil {
		status = fmt.Sprintf(" [red]%v[-]", err)
	} else if app.flash != "" {
		status += fmt.Sprintf("  [green]%s[-]", app.flash)
	}
	app.statusLine.SetText(status)
}

func (app *ViewerApp) viewportRange() (int, int, error) {
	if app.viewport == nil {
		return 0, 0, nil
	}
	return app.viewport.VisibleRange()
}

// handleResize recomputes the viewport budget from the new screen size. The
// table panel loses two lines to its border and one to the column header.
func (app *ViewerApp) handleResize(width, height int) {
	chrome := app.getHeaderHeight() + 1 + 2 + 1
	available := height - chrome
	if available < 1 {
		available = 1
	}
	app.viewport.SetAvailableLines(available)
	app.renderWindow()
}

// renderWindow redraws the index and table panels from the current viewport
func (app *ViewerApp) renderWindow() {
	rows, err := app.viewport.VisibleRows()
	if err != nil {
		app.flash = err.Error()
		app.updateStatusLine()
		return
	}
	indexLines, err := app.viewport.IndexLines()
	if err != nil {
		app.flash = err.Error()
		app.updateStatusLine()
		return
	}

	// Size the index panel to its widest label, then give the table the rest.
	indexWidth := 4
	for _, line := range indexLines {
		if w := runewidth.StringWidth(line); w > indexWidth {
			indexWidth = w
		}
	}
	indexWidth += 3
	app.bodyLayout.ResizeItem(app.indexView, indexWidth, 0)

	tableWidth := app.lastWidth - indexWidth - 2
	tableLines, err := renderTableLines(app.dataset, rows, app.viewport.ColumnOffset(), tableWidth)
	if err != nil {
		app.flash = err.Error()
		app.updateStatusLine()
		return
	}

	app.tableView.SetText(strings.Join(tableLines, "\n"))
	// Blank first line keeps index labels aligned with the data rows under
	// the table's column header.
	app.indexView.SetText("\n" + strings.Join(indexLines, "\n"))

	if remote, ok := app.dataset.(*client.Remote); ok && remote.Err() != nil {
		app.flash = remote.Err().Error()
	}
	app.updateStatusLine()
}

// copyWindow puts the visible rows on the system clipboard as TSV
func (app *ViewerApp) copyWindow() {
	rows, err := app.viewport.VisibleRows()
	if err != nil {
		app.flash = err.Error()
		app.updateStatusLine()
		return
	}
	if err := clipboard.WriteAll(windowTSV(app.dataset, rows)); err != nil {
		app.flash = fmt.Sprintf("copy failed: %v", err)
	} else {
		app.flash = fmt.Sprintf("copied %d rows", len(rows))
	}
	app.renderWindow()
}
