// Package kegg implements the connector.Connector interface against the
// KEGG REST API (https://www.kegg.jp/kegg/rest/keggapi.html).
package kegg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/crimson-sun/keggkit/internal/connector"
	"github.com/crimson-sun/keggkit/internal/connector/httpclient"
	"github.com/crimson-sun/keggkit/internal/model"
)

// DefaultBaseURL is the public KEGG REST endpoint.
const DefaultBaseURL = "https://rest.kegg.jp"

var _ connector.Connector = (*Connector)(nil)

// Connector fetches flat-text entries with the KEGG "get" operation.
type Connector struct {
	client *httpclient.Client
}

// New creates a Connector that issues requests through client.
func New(client *httpclient.Client) *Connector {
	return &Connector{client: client}
}

// Fetch retrieves the flat-text entry for id.
// A 400 response is reported as connector.ErrInvalidIdentifier; the
// underlying *httpclient.APIError stays reachable through errors.As.
func (c *Connector) Fetch(ctx context.Context, id string) (model.RawEntry, error) {
	if id == "" {
		return model.RawEntry{}, fmt.Errorf("kegg get %q: %w", id, connector.ErrInvalidIdentifier)
	}

	slog.Debug("fetching entry", "id", id)
	text, err := c.client.GetText(ctx, "/get/"+url.PathEscape(id))
	if err != nil {
		var apiErr *httpclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			return model.RawEntry{}, fmt.Errorf("kegg get %q: %w: %w", id, connector.ErrInvalidIdentifier, err)
		}
		return model.RawEntry{}, fmt.Errorf("kegg get %q: %w", id, err)
	}
	return model.RawEntry{ID: id, Text: text}, nil
}
