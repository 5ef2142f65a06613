package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// fileCatalog mirrors the catalog file layout. Prices are decimal dollars.
type fileCatalog struct {
	Locations  []Location  `mapstructure:"locations"`
	EventTypes []EventType `mapstructure:"eventTypes"`
	Categories []struct {
		ID          string     `mapstructure:"id"`
		Name        string     `mapstructure:"name"`
		Label       string     `mapstructure:"label"`
		Description string     `mapstructure:"description"`
		Items       []fileItem `mapstructure:"items"`
	} `mapstructure:"categories"`
	Beverages []struct {
		ID                  string  `mapstructure:"id"`
		Name                string  `mapstructure:"name"`
		Description         string  `mapstructure:"description"`
		Details             string  `mapstructure:"details"`
		Image               string  `mapstructure:"image"`
		TwoHourPrice        float64 `mapstructure:"twoHourPrice"`
		ThreeHourPrice      float64 `mapstructure:"threeHourPrice"`
		AdditionalHourPrice float64 `mapstructure:"additionalHourPrice"`
	} `mapstructure:"beveragePackages"`
}

type fileItem struct {
	ID          string  `mapstructure:"id"`
	Title       string  `mapstructure:"title"`
	Description string  `mapstructure:"description"`
	Image       string  `mapstructure:"image"`
	Category    string  `mapstructure:"category"`
	Price       float64 `mapstructure:"price"`
}

// Load reads a catalog file (any format viper understands, e.g. YAML or
// JSON). An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f fileCatalog
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	categories := make([]MenuCategory, 0, len(f.Categories))
	for _, fc := range f.Categories {
		cat := MenuCategory{
			ID:          fc.ID,
			Name:        fc.Name,
			Label:       fc.Label,
			Description: fc.Description,
		}
		for _, fi := range fc.Items {
			cat.Items = append(cat.Items, MenuItem{
				ID:          fi.ID,
				Title:       fi.Title,
				Description: fi.Description,
				Image:       fi.Image,
				Category:    fi.Category,
				Price:       MoneyFromFloat(fi.Price),
			})
		}
		categories = append(categories, cat)
	}

	beverages := make([]BeveragePackage, 0, len(f.Beverages))
	for _, fb := range f.Beverages {
		beverages = append(beverages, BeveragePackage{
			ID:                  fb.ID,
			Name:                fb.Name,
			Description:         fb.Description,
			Details:             fb.Details,
			Image:               fb.Image,
			TwoHourPrice:        MoneyFromFloat(fb.TwoHourPrice),
			ThreeHourPrice:      MoneyFromFloat(fb.ThreeHourPrice),
			AdditionalHourPrice: MoneyFromFloat(fb.AdditionalHourPrice),
		})
	}

	c, err := New(f.Locations, f.EventTypes, categories, beverages)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
