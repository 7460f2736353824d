package objects

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRecorder_Record(t *testing.T) {
	t.Run("Inserts", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		rec := NewRecorder(db, zap.NewNop())

		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO `object_events`").
			WithArgs(OpUpload, "docs/a.pdf", "ray-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		sqlMock.ExpectCommit()

		rec.Record(context.Background(), OpUpload, "docs/a.pdf", "ray-1")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("FailureIsSwallowed", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		rec := NewRecorder(db, zap.NewNop())

		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO `object_events`").WillReturnError(assert.AnError)
		sqlMock.ExpectRollback()

		rec.Record(context.Background(), OpDelete, "a.txt", "")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("NoDatabase", func(t *testing.T) {
		rec := NewRecorder(nil, zap.NewNop())
		assert.False(t, rec.Enabled())
		assert.NoError(t, rec.Migrate())
		rec.Record(context.Background(), OpMkdir, "photos", "")
	})
}

func TestRecorder_Recent(t *testing.T) {
	t.Run("Query", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		rec := NewRecorder(db, zap.NewNop())

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "operation", "path", "ray_id", "created_at"}).
			AddRow(2, OpDelete, "a.txt", "ray-2", now).
			AddRow(1, OpUpload, "a.txt", "ray-1", now.Add(-time.Minute))
		sqlMock.ExpectQuery("SELECT \\* FROM `object_events` ORDER BY created_at DESC").WillReturnRows(rows)

		events, err := rec.Recent(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, OpDelete, events[0].Operation)
		assert.Equal(t, "ray-1", events[1].RayID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("NoDatabase", func(t *testing.T) {
		events, err := NewRecorder(nil, zap.NewNop()).Recent(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
