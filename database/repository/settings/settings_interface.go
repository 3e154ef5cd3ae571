package settingsRepo

import "ironhorse/models"

// SettingsRepository stores the store's operating hours.
type SettingsRepository interface {
	// GetOperatingHours retrieves the weekly schedule, seeding the
	// default if none has been saved yet.
	GetOperatingHours() (models.OperatingHours, error)
	// SetOperatingHours replaces the weekly schedule.
	SetOperatingHours(hours models.OperatingHours) error
}
