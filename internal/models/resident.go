package models

import "time"

// CareUnit is an organizational unit (a home or ward) whose residents are
// rolled up together on the dashboard.
type CareUnit struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	IsActive  bool
	CreatedAt time.Time
}

// Resident is an individual under care.
type Resident struct {
	ID         int `gorm:"primaryKey"`
	CareUnitID int
	CareUnit   CareUnit `gorm:"foreignKey:CareUnitID"`
	Name       string
	IsActive   bool
	CreatedAt  time.Time
}
