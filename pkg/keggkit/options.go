package keggkit

import (
	"time"

	"github.com/crimson-sun/keggkit/internal/connector/kegg"
	"github.com/crimson-sun/keggkit/internal/keg"
)

type options struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
}

func defaultOptions() options {
	return options{
		baseURL: kegg.DefaultBaseURL,
		timeout: 30 * time.Second,
	}
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at a KEGG REST mirror.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout sets the per-request timeout. Default: 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRetries retries 429 and 5xx responses up to n times. Default: 0.
func WithRetries(n int) Option {
	return func(o *options) { o.maxRetries = n }
}

// DedupPolicy decides when a repeated KO code in a .keg file is dropped.
type DedupPolicy = keg.DedupPolicy

// Dedup policies accepted by ParseKeg.
const (
	DedupGlobal = keg.DedupGlobal
	DedupScoped = keg.DedupScoped
	DedupNone   = keg.DedupNone
)
