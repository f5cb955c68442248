// Package dataset loads question sets for the survey. A question set name
// maps to data/<name>.json under the data root; pack names carry a packs/
// prefix and resolve the same way.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

// ErrLoadFailure covers every way a question set can fail to load: missing
// file, bad JSON, empty array. Callers disable forward progress and show
// one fixed message; the cause only goes to the log.
var ErrLoadFailure = errors.New("unable to load questions, please contact the study organizer")

// Loader fetches a named question set.
type Loader interface {
	Load(ctx context.Context, name string) ([]models.Question, error)
}

// FileLoader reads question sets from a directory tree.
type FileLoader struct {
	Root string
}

func NewFileLoader(root string) *FileLoader {
	return &FileLoader{Root: root}
}

func (l *FileLoader) Load(ctx context.Context, name string) ([]models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: question set %q is empty", ErrLoadFailure, name)
	}
	return questions, nil
}

// resolve maps a set name to a path inside the data root, rejecting names
// that would escape it.
func (l *FileLoader) resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty question set name", ErrLoadFailure)
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: invalid question set name %q", ErrLoadFailure, name)
	}
	return filepath.Join(l.Root, clean+".json"), nil
}
