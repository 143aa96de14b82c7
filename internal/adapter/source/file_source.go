package source

import (
	"context"
	"os"

	"vocab-drills/internal/domain"
)

// FileSource reads the question dump from a local file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewSourceUnavailableError(s.Name(), err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", domain.NewSourceUnavailableError(s.Name(), err)
	}
	return string(data), nil
}
