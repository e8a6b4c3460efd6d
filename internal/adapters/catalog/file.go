package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileSource reads a catalog export from disk: either the GET /restaurants
// envelope or a bare array of restaurant documents with nested dishes.
type FileSource struct{ path string }

func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

func (f *FileSource) FetchRestaurants(ctx context.Context) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(b, &docs); err == nil {
		return docs, nil
	}
	var env struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
		Message string           `json:"message"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", f.path, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("catalog file %s: success=false: %s", f.path, env.Message)
	}
	return env.Data, nil
}

// FetchDishes returns nothing: file exports always nest dishes.
func (f *FileSource) FetchDishes(ctx context.Context) ([]map[string]any, error) {
	return nil, ctx.Err()
}
