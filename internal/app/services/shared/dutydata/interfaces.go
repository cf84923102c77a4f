package dutydata

import (
	"context"
	"io"
)

// Source opens named duty data documents (roster, schedule, name map).
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Kind() string
}
