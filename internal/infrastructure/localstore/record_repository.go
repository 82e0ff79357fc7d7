package localstore

import (
	"context"
	"sync"

	"github.com/elegance/timesheet-system/internal/core/domain"
)

// Blob keys. The names predate this service and must not change, so existing
// data files keep loading.
const (
	recordsKey = "elegance_timesheet_records"
	sessionKey = "active_session_start"
	userKey    = "elegance_user"
)

// RecordRepository persists the ordered record list as a single blob.
// Mutations are whole-list read-modify-writes serialized by mu.
type RecordRepository struct {
	store *Store
	mu    sync.Mutex
}

func NewRecordRepository(store *Store) *RecordRepository {
	return &RecordRepository{store: store}
}

func (r *RecordRepository) GetAll(_ context.Context) []domain.TimeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Add prepends the record so the list stays most-recent-first.
func (r *RecordRepository) Add(_ context.Context, record domain.TimeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := append([]domain.TimeRecord{record}, r.load()...)
	return r.store.Set(recordsKey, records)
}

func (r *RecordRepository) Update(_ context.Context, record domain.TimeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load()
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = record
		}
	}
	return r.store.Set(recordsKey, records)
}

func (r *RecordRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load()
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return r.store.Set(recordsKey, kept)
}

// load reads the blob; absent or corrupt data reads as an empty list.
func (r *RecordRepository) load() []domain.TimeRecord {
	var records []domain.TimeRecord
	if !r.store.Get(recordsKey, &records) {
		return []domain.TimeRecord{}
	}
	return records
}
