package services

import (
	"encoding/json"

	"github.com/gkxornjs/Uokjeryeok/internal/models"
)

// RecordRepository is the record store contract: one content document per
// (user, date key), atomic upsert, absence reported as found=false rather
// than an error.
type RecordRepository interface {
	FindByUserAndDateKey(userID uint, dateKey string) (models.Record, bool, error)
	Upsert(userID uint, dateKey string, content json.RawMessage) (models.Record, error)
	ListByUserKeyRange(userID uint, fromKey string, toKeyExclusive string) ([]models.Record, error)
	DeleteByUserAndDateKey(userID uint, dateKey string) error
}

type RecordService struct {
	records RecordRepository
}

func NewRecordService(records RecordRepository) *RecordService {
	return &RecordService{records: records}
}

// Fetch loads the record stored under a date key. A missing record is a
// normal empty result, not a failure.
func (service *RecordService) Fetch(userID uint, dateKey string) (models.Record, bool, error) {
	return service.records.FindByUserAndDateKey(userID, dateKey)
}

// Upsert replaces the content document wholesale. The store does no
// field-level merging; callers merge with previously loaded content before
// saving. UpdatedAt advances even when content is byte-identical.
func (service *RecordService) Upsert(userID uint, dateKey string, content json.RawMessage) (models.Record, error) {
	if len(content) == 0 {
		content = json.RawMessage("{}")
	}
	return service.records.Upsert(userID, dateKey, content)
}

// ListRange returns the user's records with from <= dateKey < toExclusive,
// ascending. ISO day keys order lexicographically, so the range is a plain
// string comparison in the store.
func (service *RecordService) ListRange(userID uint, fromKey string, toKeyExclusive string) ([]models.Record, error) {
	return service.records.ListByUserKeyRange(userID, fromKey, toKeyExclusive)
}

func (service *RecordService) Delete(userID uint, dateKey string) error {
	return service.records.DeleteByUserAndDateKey(userID, dateKey)
}
