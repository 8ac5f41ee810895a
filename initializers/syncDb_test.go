package initializers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestSeedProducts_SkipsWhenCatalogHasRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, SeedProducts(db, "does-not-exist.json", zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedProducts_InsertsIntoEmptyCatalog(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `products`").
		WillReturnResult(sqlmock.NewResult(1, 4))

	require.NoError(t, SeedProducts(db, filepath.Join("..", "seed", "products.json"), zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedProducts_BadFile(t *testing.T) {
	db, mock := newMockDB(t)
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := SeedProducts(db, path, zap.NewNop())

	assert.ErrorContains(t, err, "parse seed file")
	assert.NoError(t, mock.ExpectationsWereMet())
}
