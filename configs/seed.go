package configs

import (
	"log/slog"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedMenu struct {
	name  string
	price int64
}

type seedCategory struct {
	name  string
	menus []seedMenu
}

// ordered so ids come out the same on every fresh database
var sampleMenu = []seedCategory{
	{"Coffee", []seedMenu{
		{"Espresso", 18000},
		{"Cafe Latte", 25000},
	}},
	{"Non Coffee", []seedMenu{
		{"Matcha Latte", 27000},
	}},
	{"Food", []seedMenu{
		{"Nasi Goreng", 30000},
		{"Croissant", 15000},
	}},
}

// SeedSampleMenu fills an empty database with a starter menu. Rows that
// already exist by name are left alone.
func SeedSampleMenu(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, sc := range sampleMenu {
			var cat entity.Category
			if err := tx.Where(entity.Category{CategoryName: sc.name}).
				FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			for _, m := range sc.menus {
				var menu entity.Menu
				if err := tx.Where(entity.Menu{MenuName: m.name, CategoryID: cat.CategoryID}).
					Attrs(entity.Menu{Price: decimal.NewFromInt(m.price)}).
					FirstOrCreate(&menu).Error; err != nil {
					return err
				}
			}
		}
		slog.Info("sample menu seeded", slog.Int("categories", len(sampleMenu)))
		return nil
	})
}
