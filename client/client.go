// Package client provides a typed HTTP client for the dataset API, plus a
// model.Dataset adapter so a served dataset can be browsed like a local one.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/datapeek/datapeek/model"
	"github.com/datapeek/datapeek/service"
)

// DatasetClient is an HTTP client for the dataset API
type DatasetClient struct {
	baseURL string
	client  *http.Client
}

// NewDatasetClient creates a new API client
func NewDatasetClient(baseURL string) *DatasetClient {
	return &DatasetClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetInfo retrieves dataset-level metadata
func (c *DatasetClient) GetInfo() (*model.DatasetInfo, error) {
	var info model.DatasetInfo
	if err := c.get("/info", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetColumns retrieves the column descriptors
func (c *DatasetClient) GetColumns() ([]model.ColumnInfo, error) {
	var columns []model.ColumnInfo
	if err := c.get("/columns", &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// GetRows retrieves the cells of a contiguous row range
func (c *DatasetClient) GetRows(start, count int) (*service.RowsResponse, error) {
	var resp service.RowsResponse
	if err := c.get(fmt.Sprintf("/rows?start=%d&count=%d", start, count), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLabels retrieves the row labels of a contiguous row range
func (c *DatasetClient) GetLabels(start, count int) (*service.LabelsResponse, error) {
	var resp service.LabelsResponse
	if err := c.get(fmt.Sprintf("/labels?start=%d&count=%d", start, count), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a GET request and decodes the JSON response
func (c *DatasetClient) get(path string, result any) error {
	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var errResp service.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
