package json

import (
	"io"

	pkgerrors "github.com/pkg/errors"
)

// Parse reads all of r and parses it as a single JSON value.
//
// A failure to read from r (a transport error, a canceled context
// behind r, ...) is a different class of failure than a grammar
// rejection: it has nothing to do with the bytes that were read, so it
// is wrapped with a message via github.com/pkg/errors rather than
// folded into a Status. A grammar rejection once the bytes are in
// hand still comes back as a *ParseError, exactly as from ParseBytes.
func Parse(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Value{}, pkgerrors.Wrap(err, "json: reading input")
	}
	return ParseBytes(data)
}
