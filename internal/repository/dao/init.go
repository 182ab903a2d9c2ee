package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Person{},
		&RefreshToken{},
		&PasswordResetToken{},
		&Attraction{},
		&Accessibility{},
		&Transport{},
		&Owner{},
		&Category{},
		&Establishment{},
		&TourEvent{},
		&SecurityService{},
		&BasicService{},
		&RiskZone{},
		&ArchaeologicalSite{},
		&TravelDestination{},
		&EducationalResource{},
		&LegalInfo{},
		&Multimedia{},
		&Image{},
		&DocumentFile{},
		&Contact{},
		&Notification{},
		&Weather{},
	)
}
