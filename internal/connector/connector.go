package connector

import (
	"context"
	"errors"

	"github.com/crimson-sun/keggkit/internal/model"
)

// ErrInvalidIdentifier is returned when the remote service rejects an
// identifier as a malformed request.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Connector defines the interface for remote entry sources.
type Connector interface {
	// Fetch retrieves the raw flat-text entry for one identifier.
	Fetch(ctx context.Context, id string) (model.RawEntry, error)
}
