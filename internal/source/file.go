package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/hrc-store/storefront/internal/domain"
)

// FileSource reads the catalog from a JSON export of the backend store. It
// applies the store's delivery policy: only in-stock products, newest first;
// categories in display order. The file is re-read on every call so edits
// show up without a restart.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type catalogExport struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
}

func (s *FileSource) load() (*catalogExport, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog export: %w", err)
	}

	var export catalogExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("decode catalog export: %w", err)
	}
	return &export, nil
}

func (s *FileSource) Products(_ context.Context) ([]domain.Product, error) {
	export, err := s.load()
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(export.Products))
	for _, p := range export.Products {
		if p.InStock {
			products = append(products, p)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	return products, nil
}

func (s *FileSource) Categories(_ context.Context) ([]domain.Category, error) {
	export, err := s.load()
	if err != nil {
		return nil, err
	}

	categories := export.Categories
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})

	return categories, nil
}
