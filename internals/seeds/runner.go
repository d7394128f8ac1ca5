package seeds

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	generations "btec_backend/internals/seeds/classroom/generations"
)

func RunAllSeeds(db *gorm.DB, log *zap.Logger) error {

	//* Classroom
	if _, err := generations.SeedGenerations(db, log); err != nil {
		return err
	}

	return nil
}
