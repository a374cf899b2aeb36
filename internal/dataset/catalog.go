package dataset

import (
	"path/filepath"
	"sync"

	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

// Paths locates the datasets. Stems are file names without extension; the
// loader looks for "<stem>.parquet" and then "<stem>.xlsx" inside Dir.
type Paths struct {
	Dir      string
	Base     string
	Sail     string
	ImageMap string
	ImageDir string
}

func (p Paths) sources(stem string) (string, string) {
	base := filepath.Join(p.Dir, stem)
	return base + ".parquet", base + ".xlsx"
}

// Catalog keeps the loaded banks and image map in memory.
type Catalog struct {
	loader *Loader
	paths  Paths

	mu     sync.RWMutex
	banks  map[questionbank.License]*questionbank.Bank
	images ImageResolver
}

// NewCatalog loads every dataset once.
func NewCatalog(loader *Loader, paths Paths) *Catalog {
	c := &Catalog{loader: loader, paths: paths}
	c.Reload()
	return c
}

// Reload reads all datasets from disk again.
func (c *Catalog) Reload() {
	banks := make(map[questionbank.License]*questionbank.Bank, 2)
	for license, stem := range map[questionbank.License]string{
		questionbank.LicenseBase: c.paths.Base,
		questionbank.LicenseSail: c.paths.Sail,
	} {
		primary, fallback := c.paths.sources(stem)
		banks[license] = c.loader.LoadBank(license, primary, fallback)
		c.loader.logger.Info("question bank loaded", "license", license, "questions", banks[license].Len())
	}

	primary, fallback := c.paths.sources(c.paths.ImageMap)
	images := ImageResolver{
		Dir:    filepath.Join(c.paths.Dir, c.paths.ImageDir),
		Images: c.loader.LoadImageMap(primary, fallback),
	}

	c.mu.Lock()
	c.banks = banks
	c.images = images
	c.mu.Unlock()
}

// Bank returns the bank of a license, or ErrNoData when it has no questions.
func (c *Catalog) Bank(license questionbank.License) (*questionbank.Bank, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bank := c.banks[license]
	if bank.Len() == 0 {
		return nil, ErrNoData
	}
	return bank, nil
}

// Image returns the image file attached to a question.
func (c *Catalog) Image(questionID string) (string, bool) {
	c.mu.RLock()
	images := c.images
	c.mu.RUnlock()
	return images.Resolve(questionID)
}
