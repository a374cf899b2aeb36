package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nautiquiz/backend/internal/domain/history"
)

// Column names of the image map dataset.
const (
	ColumnImageID   = "Progressivo"
	ColumnImageFile = "Immagine"
)

// LoadImageMap reads the question-ID to image-file mapping. Missing or
// unusable datasets yield an empty map.
func (l *Loader) LoadImageMap(primaryPath, fallbackPath string) map[string]string {
	t := l.Load(primaryPath, fallbackPath)

	idCol := ColumnID
	if !t.Has(idCol) {
		idCol = ColumnImageID
	}
	if !t.Has(idCol) || !t.Has(ColumnImageFile) {
		return map[string]string{}
	}

	images := make(map[string]string, len(t.Rows))
	for i := range t.Rows {
		id := history.NormalizeID(t.Value(i, idCol))
		file := strings.TrimSpace(t.Value(i, ColumnImageFile))
		if id == "" || file == "" {
			continue
		}
		images[id] = file
	}
	return images
}

// ImageResolver finds the image file attached to a question.
type ImageResolver struct {
	Dir    string
	Images map[string]string
}

// Resolve returns the path of the image for questionID. When the mapped file
// name does not exist as is, a file in Dir with the same base name in any
// case and with any extension is accepted.
func (r ImageResolver) Resolve(questionID string) (string, bool) {
	name, ok := r.Images[history.NormalizeID(questionID)]
	if !ok || name == "" {
		return "", false
	}
	// Never leave the image directory.
	name = filepath.Base(name)

	target := filepath.Join(r.Dir, name)
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		return target, true
	}

	want := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if strings.ToLower(base) == want {
			return filepath.Join(r.Dir, e.Name()), true
		}
	}
	return "", false
}
