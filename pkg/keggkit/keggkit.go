package keggkit

import (
	"context"
	"fmt"
	"io"

	"github.com/crimson-sun/keggkit/internal/connector/httpclient"
	"github.com/crimson-sun/keggkit/internal/connector/kegg"
	"github.com/crimson-sun/keggkit/internal/engine"
	"github.com/crimson-sun/keggkit/internal/keg"
	"github.com/crimson-sun/keggkit/internal/model"
	"github.com/crimson-sun/keggkit/internal/pipeline"
	"github.com/crimson-sun/keggkit/internal/progress"
)

// Client retrieves and extracts KEGG entries.
type Client struct {
	connector *kegg.Connector
	engine    *engine.Engine
}

// New creates a Client.
func New(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	hc := httpclient.New(o.baseURL,
		httpclient.WithTimeout(o.timeout),
		httpclient.WithRetries(o.maxRetries),
	)
	return &Client{connector: kegg.New(hc), engine: engine.New()}
}

// Info fetches one entry and extracts its Name, Description and Class.
func (c *Client) Info(ctx context.Context, id string) (Info, error) {
	raw, err := c.connector.Fetch(ctx, id)
	if err != nil {
		return Info{}, fmt.Errorf("keggkit: %w", err)
	}
	row, err := c.engine.Process(raw)
	if err != nil {
		return Info{}, fmt.Errorf("keggkit: %w", err)
	}
	return infoFromRow(id, row), nil
}

// InfoBatch fetches ids one after another. Results keep input order. The
// first failure aborts the batch and no results are returned.
func (c *Client) InfoBatch(ctx context.Context, ids []string) ([]Info, error) {
	rows, err := pipeline.New(c.connector, c.engine, progress.Nop{}).Run(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("keggkit: %w", err)
	}
	infos := make([]Info, len(rows))
	for i, r := range rows {
		infos[i] = infoFromRow(ids[i], r)
	}
	return infos, nil
}

// ExtractInfo extracts Name, Description and Class from flat-text entry
// text without contacting the KEGG service.
func ExtractInfo(text string) (Info, error) {
	row, err := engine.New().Process(model.RawEntry{Text: text})
	if err != nil {
		return Info{}, fmt.Errorf("keggkit: %w", err)
	}
	return infoFromRow("", row), nil
}

// ParseKeg flattens a .keg stream into rows grouped by (KO, Group), sorted
// by KO then Group. The policy defaults to DedupGlobal.
func ParseKeg(r io.Reader, policy ...DedupPolicy) ([]KegRow, error) {
	h, err := keg.Parse(keg.NewTextReader(r), pickPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("keggkit: %w", err)
	}
	return kegRows(h), nil
}

// ParseKegFile is ParseKeg for a file path; gzip files are accepted.
func ParseKegFile(path string, policy ...DedupPolicy) ([]KegRow, error) {
	h, err := keg.ParseFile(path, pickPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("keggkit: %w", err)
	}
	return kegRows(h), nil
}

func pickPolicy(p []DedupPolicy) DedupPolicy {
	if len(p) > 0 {
		return p[0]
	}
	return DedupGlobal
}

func kegRows(h *keg.Hierarchy) []KegRow {
	grouped := h.Rows()
	rows := make([]KegRow, len(grouped))
	for i, g := range grouped {
		rows[i] = kegRowFromGrouped(g)
	}
	return rows
}
