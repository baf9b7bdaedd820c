// Package keggkit retrieves KEGG entries and flattens KEGG hierarchy files.
//
// Quick start:
//
//	c := keggkit.New(keggkit.WithTimeout(10 * time.Second))
//	infos, err := c.InfoBatch(ctx, []string{"path:map00010", "hsa:1234"})
//	if errors.Is(err, keggkit.ErrInvalidIdentifier) {
//	    // the KEGG service rejected one of the identifiers
//	}
//
//	rows, err := keggkit.ParseKegFile("ko00001.keg")
//
// A Client issues requests sequentially and holds no per-request state, so
// it may be shared between goroutines.
package keggkit
