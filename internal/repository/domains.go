package repository

import (
	"carelog-go/internal/database"
	"carelog-go/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SyncDomains upserts the loaded registry into care_domains so events and
// scores can reference domains by ID. Rows are never deleted here; retiring a
// domain is a manual operation because historical scores reference it.
func SyncDomains(registry *models.DomainRegistry) error {
	query := `INSERT INTO care_domains (name, expected_per_day, gap_amber_hours, gap_red_hours, item_titles)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			expected_per_day = EXCLUDED.expected_per_day,
			gap_amber_hours = EXCLUDED.gap_amber_hours,
			gap_red_hours = EXCLUDED.gap_red_hours,
			item_titles = EXCLUDED.item_titles`

	return database.DB.Transaction(func(tx *gorm.DB) error {
		for _, name := range registry.Names() {
			cfg, _ := registry.Lookup(name)
			if err := tx.Exec(query, cfg.Name, cfg.ExpectedPerDay, cfg.GapAmberHours,
				cfg.GapRedHours, pq.StringArray(cfg.ItemTitles)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetDomains returns all persisted domains.
func GetDomains() ([]models.CareDomain, error) {
	var domains []models.CareDomain
	err := database.DB.Raw(`SELECT * FROM care_domains ORDER BY name`).Scan(&domains).Error
	return domains, err
}

// GetDomainByName returns one domain row, or gorm.ErrRecordNotFound.
func GetDomainByName(name string) (*models.CareDomain, error) {
	domain := &models.CareDomain{}
	err := database.DB.Raw(`SELECT * FROM care_domains WHERE name = ?`, name).Scan(domain).Error
	if err != nil {
		return nil, err
	}
	if domain.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return domain, nil
}
