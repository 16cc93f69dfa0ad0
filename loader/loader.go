// Package loader reads datasets into memory, dispatching on the file
// extension. Unsupported extensions are reported before any viewer state is
// constructed.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	pio "github.com/hangxie/parquet-tools/io"

	"github.com/datapeek/datapeek/model"
)

// Load reads the dataset at uri. Local .csv and .xlsx files are read from
// disk; .parquet accepts any URI the parquet reader supports (file, s3, gcs,
// azblob, http).
func Load(uri string, readOpt pio.ReadOption) (*model.Table, error) {
	ext := strings.ToLower(filepath.Ext(uri))
	switch ext {
	case ".csv":
		return loadCSV(uri)
	case ".xlsx":
		return loadExcel(uri)
	case ".parquet":
		return loadParquet(uri, readOpt)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
