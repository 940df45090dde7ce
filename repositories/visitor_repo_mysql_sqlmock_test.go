package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"VisitorIntake/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// helper: new GORM DB using a sqlmock connection with MySQL dialect.
func newMySQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // no real server to ask
	})

	gdb, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock, sqlDB
}

const insertVisitorSQL = "INSERT INTO `visitors` (`name`,`visited_at`,`user_agent`) VALUES (?,?,?)"

func TestVisitorRepository_Create(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewVisitorRepository(db)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertVisitorSQL)).
		WithArgs("Anna O'Brien", sqlmock.AnyArg(), "curl/8.0").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	v := &models.Visitor{Name: "Anna O'Brien", VisitedAt: at, UserAgent: "curl/8.0"}
	require.NoError(t, repo.Create(context.Background(), v))
	assert.Equal(t, uint(1), v.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorRepository_Create_ErrorPropagates(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewVisitorRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertVisitorSQL)).
		WithArgs("Anna", sqlmock.AnyArg(), "").
		WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Visitor{Name: "Anna", VisitedAt: time.Now()})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorRepository_Create_LongUserAgent(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewVisitorRepository(db)
	ua := "Mozilla/5.0 " + strings.Repeat("x", 600)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertVisitorSQL)).
		WithArgs("Anna", sqlmock.AnyArg(), ua). // stored whole, not cut
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), &models.Visitor{Name: "Anna", VisitedAt: time.Now(), UserAgent: ua}))
	require.NoError(t, mock.ExpectationsWereMet())
}
