package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datapeek/datapeek/model"
)

func testService(t *testing.T) *DatasetService {
	t.Helper()
	table := model.NewTable("people", []string{"name", "city"}, [][]string{
		{"ada", "london"},
		{"grace", "new york"},
		{"alan", "cambridge"},
		{"edsger", "austin"},
		{"barbara", "boston"},
	})
	return NewDatasetService(table, "people")
}

func doGet(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func Test_DatasetService_Info(t *testing.T) {
	router := CreateRouter(testService(t), true)

	w := doGet(t, router, "/info")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var info model.DatasetInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	require.Equal(t, model.DatasetInfo{Name: "people", NumRows: 5, NumColumns: 2}, info)
}

func Test_DatasetService_Columns(t *testing.T) {
	router := CreateRouter(testService(t), true)

	w := doGet(t, router, "/columns")
	require.Equal(t, http.StatusOK, w.Code)

	var columns []model.ColumnInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &columns))
	require.Len(t, columns, 2)
	require.Equal(t, "name", columns[0].Name)
	require.Equal(t, "city", columns[1].Name)
	require.Equal(t, len("cambridge"), columns[1].Width, "width covers the widest cell")
}

func Test_DatasetService_Rows(t *testing.T) {
	router := CreateRouter(testService(t), true)

	tests := []struct {
		name      string
		path      string
		wantStart int
		wantRows  [][]string
	}{
		{
			name:      "Plain range",
			path:      "/rows?start=1&count=2",
			wantStart: 1,
			wantRows:  [][]string{{"grace", "new york"}, {"alan", "cambridge"}},
		},
		{
			name:      "Range clamped at the end",
			path:      "/rows?start=4&count=10",
			wantStart: 4,
			wantRows:  [][]string{{"barbara", "boston"}},
		},
		{
			name:      "Negative start clamps to zero",
			path:      "/rows?start=-3&count=1",
			wantStart: 0,
			wantRows:  [][]string{{"ada", "london"}},
		},
		{
			name:      "Start past the end yields empty",
			path:      "/rows?start=99&count=5",
			wantStart: 5,
			wantRows:  [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, router, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			var resp RowsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tt.wantStart, resp.Start)
			require.Equal(t, tt.wantRows, resp.Rows)
		})
	}
}

func Test_DatasetService_Labels(t *testing.T) {
	router := CreateRouter(testService(t), true)

	w := doGet(t, router, "/labels?start=2&count=2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp LabelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Start)
	require.Equal(t, []string{"2", "3"}, resp.Labels, "default labels are row positions")
}

func Test_DatasetService_BadParams(t *testing.T) {
	router := CreateRouter(testService(t), true)

	tests := []struct {
		name string
		path string
	}{
		{name: "Bad start", path: "/rows?start=abc"},
		{name: "Bad count", path: "/rows?start=0&count=xyz"},
		{name: "Bad labels start", path: "/labels?start=1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, router, tt.path)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Error)
		})
	}
}

func Test_DatasetService_CORS(t *testing.T) {
	router := CreateRouter(testService(t), true)

	w := doGet(t, router, "/info")
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
