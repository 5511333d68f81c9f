package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
	"github.com/aretw0/taskboard/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Loader reads the initial board from a YAML or JSON document.
type Loader struct {
	Path string
}

// Ensure Loader implements BoardLoader
var _ ports.BoardLoader = (*Loader)(nil)

// NewLoader creates a loader for the board document at path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// LoadBoard reads, validates and decodes the board document.
// Files ending in .json are parsed as JSON, anything else as YAML.
func (l *Loader) LoadBoard(ctx context.Context) (*domain.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	return Parse(data, filepath.Ext(l.Path))
}

// Parse decodes a board document. ext selects the format (".json", ".yaml", ".yml").
func Parse(data []byte, ext string) (*domain.Board, error) {
	var doc any
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse board json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse board yaml: %w", err)
		}
	}

	if err := schema.ValidateBoardDocument(doc); err != nil {
		return nil, fmt.Errorf("invalid board document: %w", err)
	}

	// The document is valid, so re-encoding through JSON gives the exact domain shape.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var board domain.Board
	if err := json.Unmarshal(raw, &board); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}

	if board.Lists == nil {
		board.Lists = []*domain.List{}
	}
	for _, l := range board.Lists {
		if l.Tasks == nil {
			l.Tasks = []domain.Task{}
		}
	}
	return &board, nil
}
