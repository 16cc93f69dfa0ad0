package client

// remoteBlockSize is the number of rows fetched per API call. Aligned blocks
// keep the cache simple and turn a page of viewport traffic into at most two
// requests.
const remoteBlockSize = 256

type rowBlock struct {
	rows   [][]string
	labels []string
}

// Remote adapts a served dataset to model.Dataset. Rows and labels are
// fetched lazily in aligned blocks and cached; metadata is fetched once at
// open time. Not safe for concurrent use, matching the viewer's single
// event-loop access pattern.
type Remote struct {
	client  *DatasetClient
	name    string
	numRows int
	columns []string
	widths  []int
	blocks  map[int]*rowBlock
	err     error
}

// OpenRemote connects to a dataset server and fetches its metadata.
func OpenRemote(baseURL string) (*Remote, error) {
	c := NewDatasetClient(baseURL)

	info, err := c.GetInfo()
	if err != nil {
		return nil, err
	}
	columnInfos, err := c.GetColumns()
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(columnInfos))
	widths := make([]int, len(columnInfos))
	for i, ci := range columnInfos {
		columns[i] = ci.Name
		widths[i] = ci.Width
	}

	return &Remote{
		client:  c,
		name:    info.Name,
		numRows: info.NumRows,
		columns: columns,
		widths:  widths,
		blocks:  map[int]*rowBlock{},
	}, nil
}

// Name returns the dataset name reported by the server.
func (r *Remote) Name() string {
	return r.name
}

// Err returns the last fetch error, if any. Cell accessors cannot return
// errors, so a failed block fetch yields empty cells and parks the error
// here for the viewer's status line.
func (r *Remote) Err() error {
	return r.err
}

func (r *Remote) RowCount() int {
	return r.numRows
}

func (r *Remote) ColumnNames() []string {
	return r.columns
}

func (r *Remote) ColumnWidths() []int {
	return r.widths
}

func (r *Remote) CellsOfRow(i int) []string {
	block := r.block(i)
	offset := i - (i/remoteBlockSize)*remoteBlockSize
	if block == nil || offset >= len(block.rows) {
		return make([]string, len(r.columns))
	}
	return block.rows[offset]
}

func (r *Remote) RowLabel(i int) string {
	block := r.block(i)
	offset := i - (i/remoteBlockSize)*remoteBlockSize
	if block == nil || offset >= len(block.labels) {
		return ""
	}
	return block.labels[offset]
}

// block returns the cached block covering row i, fetching it if needed.
func (r *Remote) block(i int) *rowBlock {
	if i < 0 || i >= r.numRows {
		return nil
	}
	start := (i / remoteBlockSize) * remoteBlockSize
	if cached, ok := r.blocks[start]; ok {
		return cached
	}

	rowsResp, err := r.client.GetRows(start, remoteBlockSize)
	if err != nil {
		r.err = err
		return nil
	}
	labelsResp, err := r.client.GetLabels(start, remoteBlockSize)
	if err != nil {
		r.err = err
		return nil
	}

	block := &rowBlock{rows: rowsResp.Rows, labels: labelsResp.Labels}
	r.blocks[start] = block
	return block
}
