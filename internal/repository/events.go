package repository

import (
	"time"

	"carelog-go/internal/database"
	"carelog-go/internal/models"

	"gorm.io/gorm"
)

// GetEventsForWindow fetches all events for one resident/domain inside the
// window, ordered by event time. This is the only place events are scoped;
// the scoring engine trusts the list it receives and does not re-filter.
func GetEventsForWindow(residentID, domainID int, start, end time.Time) ([]models.CareEvent, error) {
	var events []models.CareEvent
	query := `SELECT * FROM care_events
		WHERE resident_id = ? AND domain_id = ?
		  AND event_time >= ? AND event_time <= ?
		ORDER BY event_time ASC`
	err := database.DB.Raw(query, residentID, domainID, start, end).Scan(&events).Error
	return events, err
}

// SaveEventsTx inserts a batch of events in a single transaction.
func SaveEventsTx(events []models.CareEvent) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		query := `INSERT INTO care_events
			(resident_id, domain_id, event_time, logged_time, assistance_level, is_refusal, title, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
		for _, e := range events {
			if err := tx.Exec(query, e.ResidentID, e.DomainID, e.EventTime, e.LoggedTime,
				e.AssistanceLevel, e.IsRefusal, e.Title, e.Description).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetActiveResidents returns all active residents of active units.
func GetActiveResidents() ([]models.Resident, error) {
	var residents []models.Resident
	query := `SELECT r.* FROM residents r
		JOIN care_units u ON r.care_unit_id = u.id
		WHERE r.is_active = TRUE AND u.is_active = TRUE
		ORDER BY r.name`
	err := database.DB.Raw(query).Scan(&residents).Error
	return residents, err
}

// GetResidentsForUnit returns the active residents of one unit.
func GetResidentsForUnit(unitID int) ([]models.Resident, error) {
	var residents []models.Resident
	query := `SELECT * FROM residents WHERE care_unit_id = ? AND is_active = TRUE ORDER BY name`
	err := database.DB.Raw(query, unitID).Scan(&residents).Error
	return residents, err
}

// GetCareUnit returns one unit by ID.
func GetCareUnit(unitID int) (*models.CareUnit, error) {
	unit := &models.CareUnit{}
	err := database.DB.Raw(`SELECT * FROM care_units WHERE id = ?`, unitID).Scan(unit).Error
	if err != nil {
		return nil, err
	}
	if unit.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return unit, nil
}
