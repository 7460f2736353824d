package objects

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Audited operations.
const (
	OpUpload = "upload"
	OpDelete = "delete"
	OpMkdir  = "mkdir"
)

// Event is one recorded bucket mutation.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Operation string    `gorm:"size:32;not null;index" json:"operation"`
	Path      string    `gorm:"size:1024;not null" json:"path"`
	RayID     string    `gorm:"size:64" json:"ray_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for GORM.
func (Event) TableName() string {
	return "object_events"
}

// Recorder persists mutations to the audit table. A Recorder without a database is a no-op.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a recorder. db may be nil.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, logger: logger}
}

// Enabled reports whether events are persisted.
func (r *Recorder) Enabled() bool {
	return r.db != nil
}

// Migrate creates or updates the audit table.
func (r *Recorder) Migrate() error {
	if r.db == nil {
		return nil
	}
	return r.db.AutoMigrate(&Event{})
}

// Record stores an event. Failures are logged and never returned.
func (r *Recorder) Record(ctx context.Context, operation, path, rayID string) {
	if r.db == nil {
		return
	}

	event := Event{Operation: operation, Path: path, RayID: rayID}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		r.logger.Warn("Failed to record audit event",
			zap.String("operation", operation),
			zap.String("path", path),
			zap.Error(err))
	}
}

// Recent returns the latest events, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Event, error) {
	if r.db == nil {
		return []Event{}, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var events []Event
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
