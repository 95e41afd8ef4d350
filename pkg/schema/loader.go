package schema

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/bekha-io/tuiforms/pkg/form"
)

// Load reads a YAML definition from disk and builds the form it declares.
func Load(ctx context.Context, path string) (*form.Form, error) {
	data, err := loadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("schema loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}
