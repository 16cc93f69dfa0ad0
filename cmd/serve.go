package cmd

import (
	pio "github.com/hangxie/parquet-tools/io"

	"github.com/datapeek/datapeek/loader"
	"github.com/datapeek/datapeek/service"
)

// ServeCmd is a kong command for serve
type ServeCmd struct {
	URI     string `arg:"" predictor:"file" help:"Path of the dataset file to serve (.csv, .xlsx, .parquet)."`
	Address string `short:"a" default:"localhost:8080" help:"Address to listen on."`
	pio.ReadOption
}

// Run does actual serve job
func (s ServeCmd) Run() error {
	table, err := loader.Load(s.URI, s.ReadOption)
	if err != nil {
		return err
	}

	return service.StartServer(service.NewDatasetService(table, table.Name()), s.Address)
}
