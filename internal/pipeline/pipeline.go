package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crimson-sun/keggkit/internal/connector"
	"github.com/crimson-sun/keggkit/internal/model"
)

// Processor extracts an InfoRow from a raw entry.
type Processor interface {
	Process(raw model.RawEntry) (model.InfoRow, error)
}

// Progress observes batch progress. It is updated synchronously after each
// identifier and has no effect on scheduling.
type Progress interface {
	Start(total int)
	Advance()
	Finish()
}

// Pipeline connects a connector and a processor into a sequential batch run.
type Pipeline struct {
	connector connector.Connector
	processor Processor
	progress  Progress
}

// New creates a Pipeline from the given components.
func New(conn connector.Connector, proc Processor, prog Progress) *Pipeline {
	return &Pipeline{
		connector: conn,
		processor: proc,
		progress:  prog,
	}
}

// Run fetches and processes each identifier in order, one at a time.
// Output row i corresponds to ids[i]; repeated identifiers are kept.
// The first error aborts the run and no rows are returned.
func (p *Pipeline) Run(ctx context.Context, ids []string) ([]model.InfoRow, error) {
	p.progress.Start(len(ids))
	defer p.progress.Finish()

	rows := make([]model.InfoRow, 0, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := p.connector.Fetch(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("pipeline fetch: %w", err)
		}
		row, err := p.processor.Process(raw)
		if err != nil {
			return nil, fmt.Errorf("pipeline process: %w", err)
		}
		rows = append(rows, row)

		p.progress.Advance()
		slog.Debug("entry processed", "id", id, "done", i+1, "total", len(ids))
	}
	return rows, nil
}

// SplitIDs splits a comma-separated identifier list. Whitespace is kept.
func SplitIDs(list string) []string {
	return strings.Split(list, ",")
}
