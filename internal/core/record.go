// AngelaMos | 2026
// record.go

package core

import (
	"time"
)

// Record is the column set shared by every persisted entity: identity,
// audit stamps, the soft-delete triple and an optimistic-versioning
// counter. Embed it in entity structs; sqlx flattens the db tags.
type Record struct {
	ID          string     `db:"id"           json:"id"`
	CreatedAt   time.Time  `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"   json:"updated_at"`
	CreatedByID *string    `db:"created_by_id" json:"created_by_id,omitempty"`
	UpdatedByID *string    `db:"updated_by_id" json:"updated_by_id,omitempty"`
	IsDeleted   bool       `db:"is_deleted"   json:"-"`
	DeletedAt   *time.Time `db:"deleted_at"   json:"-"`
	DeletedByID *string    `db:"deleted_by_id" json:"-"`
	Version     int        `db:"version"      json:"version"`
}

const recordColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version`

// RecordColumns is the SELECT fragment for the shared column set.
func RecordColumns() string {
	return recordColumns
}
