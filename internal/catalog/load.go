// Package catalog читает описание каталога карточек из YAML.
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"gopkg.in/yaml.v3"
)

type fileItem struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Rarity   string `yaml:"rarity"`
	Series   string `yaml:"series"`
	ImageURL string `yaml:"image_url"`
}

type file struct {
	Items []fileItem `yaml:"items"`
}

// LoadFile читает каталог из файла path.
func LoadFile(path string) ([]domain.CatalogItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load разбирает каталог. Повторяющиеся id и неизвестные редкости считаются ошибкой.
func Load(r io.Reader) ([]domain.CatalogItem, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Items))
	items := make([]domain.CatalogItem, 0, len(doc.Items))
	for i, it := range doc.Items {
		if it.ID == "" || it.Name == "" {
			return nil, fmt.Errorf("catalog item #%d: id and name are required", i+1)
		}
		if _, ok := seen[it.ID]; ok {
			return nil, fmt.Errorf("catalog item #%d: duplicate id %q", i+1, it.ID)
		}
		seen[it.ID] = struct{}{}

		rarity, err := domain.ParseRarity(it.Rarity)
		if err != nil {
			return nil, fmt.Errorf("catalog item %q: %w", it.ID, err)
		}
		items = append(items, domain.CatalogItem{
			ID:       it.ID,
			Name:     it.Name,
			Rarity:   rarity,
			Series:   it.Series,
			ImageURL: it.ImageURL,
		})
	}
	return items, nil
}
