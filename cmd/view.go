package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	pio "github.com/hangxie/parquet-tools/io"

	"github.com/datapeek/datapeek/client"
	"github.com/datapeek/datapeek/loader"
	"github.com/datapeek/datapeek/model"
)

// ViewCmd is a kong command for view
type ViewCmd struct {
	URI string `arg:"" predictor:"file" help:"Path of a dataset file (.csv, .xlsx, .parquet) or URL of a dataset server."`
	pio.ReadOption
}

// openDataset resolves a URI to a dataset: local files go through the format
// loaders, http(s) URLs open a remote dataset server.
func openDataset(uri string, readOpt pio.ReadOption) (model.Dataset, string, error) {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		remote, err := client.OpenRemote(uri)
		if err != nil {
			return nil, "", err
		}
		return remote, remote.Name(), nil
	}

	table, err := loader.Load(uri, readOpt)
	if err != nil {
		return nil, "", err
	}
	return table, table.Name(), nil
}

// Run does actual view job
func (v ViewCmd) Run() error {
	app := NewViewerApp()

	// Create a loading modal with cancellation instructions
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Opening dataset...\n%s\n\nPlease wait...\n\nPress ESC or Ctrl+C to cancel", v.URI)).
		SetTextColor(tcell.ColorYellow)

	// Context for cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Track if loading was cancelled
	cancelled := false

	// Add input capture to handle cancellation
	modal.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			cancelled = true
			cancel()
			app.tviewApp.Stop()
			return nil
		}
		return event
	})

	app.pages.AddPage("loading", modal, true, true)
	app.tviewApp.SetRoot(app.pages, true)

	// Channel to receive the result of dataset opening
	type result struct {
		dataset model.Dataset
		name    string
		err     error
	}
	resultChan := make(chan result, 1)

	// Start dataset opening in background
	go func() {
		dataset, name, err := openDataset(v.URI, v.ReadOption)
		select {
		case <-ctx.Done():
			return
		case resultChan <- result{dataset: dataset, name: name, err: err}:
		}
	}()

	// Start the app and wait for dataset opening to complete
	go func() {
		select {
		case <-ctx.Done():
			// User cancelled
			return
		case res := <-resultChan:
			app.tviewApp.QueueUpdateDraw(func() {
				if res.err != nil {
					// Show error modal
					errorModal := tview.NewModal().
						SetText(fmt.Sprintf("Error opening dataset:\n%v\n\nPress ESC to exit", res.err)).
						SetTextColor(tcell.ColorRed).
						AddButtons([]string{"Exit"}).
						SetDoneFunc(func(buttonIndex int, buttonLabel string) {
							app.tviewApp.Stop()
						})
					app.pages.AddPage("error", errorModal, true, true)
					app.pages.SwitchToPage("error")
					return
				}

				// Store dataset in app
				app.currentFile = v.URI
				app.dataset = res.dataset

				// Remove loading modal and show main view
				app.pages.RemovePage("loading")
				app.showMainView()
				app.pages.AddPage("main", app.mainLayout, true, true)
				app.pages.SwitchToPage("main")
			})
		}
	}()

	// Run the app
	err := app.tviewApp.Run()

	// If cancelled, return nil (successful cancellation)
	if cancelled {
		return nil
	}

	return err
}
