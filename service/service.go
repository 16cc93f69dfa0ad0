// Package service exposes a loaded dataset as a JSON API so it can be browsed
// remotely or embedded behind the TUI.
package service

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/datapeek/datapeek/model"
)

const (
	// defaultRowCount is used when a range request omits count.
	defaultRowCount = 256
	// maxRowCount caps a single range request.
	maxRowCount = 4096
)

// DatasetService serves one dataset. The dataset is borrowed read-only, so
// handlers need no locking.
type DatasetService struct {
	ds   model.Dataset
	name string
}

// NewDatasetService creates a service over a loaded dataset.
func NewDatasetService(ds model.Dataset, name string) *DatasetService {
	return &DatasetService{ds: ds, name: name}
}

// RowsResponse is a contiguous slice of the dataset's cell grid.
type RowsResponse struct {
	Start int        `json:"start"`
	Rows  [][]string `json:"rows"`
}

// LabelsResponse is a contiguous slice of the dataset's row labels.
type LabelsResponse struct {
	Start  int      `json:"start"`
	Labels []string `json:"labels"`
}

// CreateRouter creates a router with all routes configured. If quiet is true
// the logging middleware is disabled (used by the embedded server).
func CreateRouter(s *DatasetService, quiet bool) *mux.Router {
	r := mux.NewRouter()
	s.SetupRoutes(r)
	r.Use(CORSMiddleware)
	if !quiet {
		r.Use(LoggingMiddleware)
	}
	return r
}

// SetupRoutes configures all HTTP routes
func (s *DatasetService) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/info", s.handleInfo).Methods("GET")
	r.HandleFunc("/columns", s.handleColumns).Methods("GET")
	r.HandleFunc("/rows", s.handleRows).Methods("GET")
	r.HandleFunc("/labels", s.handleLabels).Methods("GET")
}

// handleInfo returns dataset-level metadata
func (s *DatasetService) handleInfo(w http.ResponseWriter, r *http.Request) {
	info := model.DatasetInfo{
		Name:       s.name,
		NumRows:    s.ds.RowCount(),
		NumColumns: len(s.ds.ColumnNames()),
	}
	WriteJSON(w, http.StatusOK, info)
}

// handleColumns returns the column descriptors
func (s *DatasetService) handleColumns(w http.ResponseWriter, r *http.Request) {
	names := s.ds.ColumnNames()
	widths := s.ds.ColumnWidths()

	columns := make([]model.ColumnInfo, len(names))
	for i, name := range names {
		columns[i] = model.ColumnInfo{Name: name, Width: widths[i]}
	}
	WriteJSON(w, http.StatusOK, columns)
}

// handleRows returns the cells of a contiguous row range. Out-of-range
// requests are clamped, matching the viewer's navigation semantics; a range
// past the end yields an empty result, not an error.
func (s *DatasetService) handleRows(w http.ResponseWriter, r *http.Request) {
	start, count, ok := rangeParams(w, r)
	if !ok {
		return
	}
	start, end := clampRange(start, count, s.ds.RowCount())

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, s.ds.CellsOfRow(i))
	}
	WriteJSON(w, http.StatusOK, RowsResponse{Start: start, Rows: rows})
}

// handleLabels returns the row labels of a contiguous row range
func (s *DatasetService) handleLabels(w http.ResponseWriter, r *http.Request) {
	start, count, ok := rangeParams(w, r)
	if !ok {
		return
	}
	start, end := clampRange(start, count, s.ds.RowCount())

	labels := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		labels = append(labels, s.ds.RowLabel(i))
	}
	WriteJSON(w, http.StatusOK, LabelsResponse{Start: start, Labels: labels})
}

// rangeParams parses the start/count query parameters, writing a 400 response
// on malformed input.
func rangeParams(w http.ResponseWriter, r *http.Request) (start, count int, ok bool) {
	query := r.URL.Query()

	start = 0
	if raw := query.Get("start"); raw != "" {
		var err error
		if start, err = strconv.Atoi(raw); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid start row")
			return 0, 0, false
		}
	}

	count = defaultRowCount
	if raw := query.Get("count"); raw != "" {
		var err error
		if count, err = strconv.Atoi(raw); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid row count")
			return 0, 0, false
		}
	}
	return start, count, true
}

func clampRange(start, count, numRows int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > numRows {
		start = numRows
	}
	if count < 0 {
		count = 0
	}
	if count > maxRowCount {
		count = maxRowCount
	}
	end := start + count
	if end > numRows {
		end = numRows
	}
	return start, end
}

// StartServer starts the HTTP server with verbose output
func StartServer(s *DatasetService, addr string) error {
	r := CreateRouter(s, false)

	fmt.Printf("Serving %s on %s\n", s.name, addr)
	fmt.Printf("Available endpoints:\n")
	fmt.Printf("  GET /info                     - Dataset metadata\n")
	fmt.Printf("  GET /columns                  - Column names and widths\n")
	fmt.Printf("  GET /rows?start=&count=       - Cell grid for a row range\n")
	fmt.Printf("  GET /labels?start=&count=     - Row labels for a row range\n")
	fmt.Println()

	return http.ListenAndServe(addr, r)
}
