package historyService

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})

	return gormDB, mock, err
}

func TestGormStorageLoadMissingKey(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `storage_records`").
		WithArgs(StorageKey("g1"), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "version", "value"}))

	storage := NewGormStorage(db)
	_, ok, err := storage.Load(StorageKey("g1"))
	if err != nil {
		t.Fatalf("missing key must not be an error: %v", err)
	}
	if ok {
		t.Errorf("expected ok=false for a missing key")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGormStorageLoadExistingKey(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	blob := `{"history":{},"currentMemberId":"m1"}`
	mock.ExpectQuery("SELECT \\* FROM `storage_records`").
		WithArgs(StorageKey("g1"), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "version", "value"}).
			AddRow(1, StorageKey("g1"), 1, blob))

	storage := NewGormStorage(db)
	value, ok, err := storage.Load(StorageKey("g1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true for an existing key")
	}
	if string(value) != blob {
		t.Errorf("expected %q, got %q", blob, string(value))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
