package db

import (
	"encoding/json"
	"time"

	"github.com/gkxornjs/Uokjeryeok/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

// FindByUserAndDateKey loads the single record stored under a date key.
// Absence is reported through the bool, not as an error.
func (repo *RecordRepository) FindByUserAndDateKey(userID uint, dateKey string) (models.Record, bool, error) {
	entry := models.Record{}
	result := repo.database.
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.Record{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Record{}, false, nil
	}
	return entry, true, nil
}

// Upsert writes the content document atomically: the unique (user_id,
// date_key) index plus ON CONFLICT guarantees at most one row per key under
// concurrent writers, last write winning. Content is replaced wholesale and
// updated_at advances even when the document is byte-identical.
func (repo *RecordRepository) Upsert(userID uint, dateKey string, content json.RawMessage) (models.Record, error) {
	now := time.Now()
	entry := models.Record{
		UserID:    userID,
		DateKey:   dateKey,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored := models.Record{}
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date_key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"content":    string(content),
				"updated_at": now,
			}),
		}).Create(&entry).Error; err != nil {
			return err
		}

		return tx.
			Where("user_id = ? AND date_key = ?", userID, dateKey).
			First(&stored).Error
	})
	if err != nil {
		return models.Record{}, err
	}
	return stored, nil
}

func (repo *RecordRepository) ListByUserKeyRange(userID uint, fromKey string, toKeyExclusive string) ([]models.Record, error) {
	records := make([]models.Record, 0)
	if err := repo.database.
		Where("user_id = ? AND date_key >= ? AND date_key < ?", userID, fromKey, toKeyExclusive).
		Order("date_key ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) DeleteByUserAndDateKey(userID uint, dateKey string) error {
	return repo.database.
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		Delete(&models.Record{}).Error
}
