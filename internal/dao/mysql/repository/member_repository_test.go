package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"consulado_admin_server/pkg/errorx"
)

// newMockDB 构造挂在 sqlmock 上的 GORM 连接
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestMemberRepositoryFindByUuid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	rows := sqlmock.NewRows([]string{"id", "uuid", "number", "first_name", "last_name", "role"}).
		AddRow(1, "S1", "1001", "Ana", "García", 1)
	mock.ExpectQuery("SELECT \\* FROM `members` WHERE uuid = \\?").
		WillReturnRows(rows)

	m, err := repo.FindByUuid("S1")
	require.NoError(t, err)
	assert.Equal(t, "1001", m.Number)
	assert.Equal(t, "Ana", m.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepositoryFindByUuidNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `members` WHERE uuid = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUuid("S404")
	require.Error(t, err)
	assert.True(t, errorx.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepositoryUpdateNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `members` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateNumber("S1", "5000"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepositoryUpdateChapterAndRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `members` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateChapterAndRole("S1", "C2", 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepositoryHardDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `members` WHERE uuid = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.HardDelete("S1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
