package generations

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/classroom/generations/model"
	helper "btec_backend/internals/helpers"
)

//go:embed data_generations.json
var defaultGenerations []byte

type GenerationSeed struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Descr string `json:"descr"`
}

// SeedGenerations inserts the default cohorts, but only into an empty table,
// so running it on every boot is safe. Returns how many rows were inserted.
func SeedGenerations(db *gorm.DB, log *zap.Logger) (int, error) {
	var seeds []GenerationSeed
	if err := sonic.Unmarshal(defaultGenerations, &seeds); err != nil {
		return 0, fmt.Errorf("decode default generations: %w", err)
	}

	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.GenerationModel{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Debug("generations already present, seed skipped", zap.Int64("count", n))
			return nil
		}

		rows := make([]model.GenerationModel, 0, len(seeds))
		for _, s := range seeds {
			name := strings.TrimSpace(s.Name)
			rows = append(rows, model.GenerationModel{
				ID:      s.ID,
				Name:    name,
				NameKey: helper.NameKey(name),
				Descr:   strings.TrimSpace(s.Descr),
			})
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		log.Info("seeded default generations", zap.Int("count", inserted))
	}
	return inserted, nil
}
