package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package maps. The service
// table carries the idx_services_provider_name unique index that backs the
// duplicate-name check on create.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&vendorProfileModel{},
		&islandModel{},
		&serviceModel{},
		&bookingModel{},
		&reviewModel{},
	)
}
