package htmldoc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile reads and parses an HTML document from disk.
func ParseFile(ctx context.Context, path string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("htmldoc: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("htmldoc: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseFS reads and parses an HTML document stored in an fs.FS, such as an
// embed.FS bundled with the application.
func ParseFS(ctx context.Context, filesystem fs.FS, name string) (*Document, error) {
	if filesystem == nil {
		return nil, errors.New("htmldoc: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("htmldoc: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := filesystem.Open(name)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: open %s: %w", name, err)
	}
	defer f.Close()

	return Parse(f)
}
