package dutydata

import (
	"context"
	"duty-service/internal/pkg/constvars"
	"io"
	"os"
	"path/filepath"
)

type fileSource struct {
	BaseDir string
}

// NewFileSource resolves relative names against baseDir.
func NewFileSource(baseDir string) Source {
	return &fileSource{BaseDir: baseDir}
}

func (s *fileSource) Kind() string {
	return constvars.DutyDataSourceFile
}

func (s *fileSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, name)
	}
	return os.Open(path)
}
