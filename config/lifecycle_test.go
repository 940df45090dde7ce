package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"VisitorIntake/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// helper: GORM DB over sqlmock, MySQL dialect, no server handshake.
func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestConnectStore_Success_Publishes(t *testing.T) {
	db, _ := newMockGorm(t)
	store := repositories.NewStoreHandle()

	done := ConnectStore(context.Background(), func(context.Context) (*gorm.DB, error) { return db, nil }, time.Second, store)

	require.NoError(t, <-done)
	assert.True(t, store.Connected())
}

func TestConnectStore_DialError_StaysAbsent(t *testing.T) {
	store := repositories.NewStoreHandle()
	boom := errors.New("no such host")

	done := ConnectStore(context.Background(), func(context.Context) (*gorm.DB, error) { return nil, boom }, time.Second, store)

	assert.ErrorIs(t, <-done, boom)
	assert.False(t, store.Connected())
}

func TestConnectStore_ReturnsBeforeDialFinishes(t *testing.T) {
	store := repositories.NewStoreHandle()
	release := make(chan struct{})
	defer close(release)

	start := time.Now()
	done := ConnectStore(context.Background(), func(ctx context.Context) (*gorm.DB, error) {
		select {
		case <-release:
			return nil, errors.New("released")
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}, time.Minute, store)

	assert.Less(t, time.Since(start), time.Second) // caller is never blocked
	select {
	case <-done:
		t.Fatal("connect finished while dial was still blocked")
	default:
	}
	assert.False(t, store.Connected())
}

func TestConnectStore_Timeout_StaysAbsent(t *testing.T) {
	store := repositories.NewStoreHandle()

	done := ConnectStore(context.Background(), func(ctx context.Context) (*gorm.DB, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, 20*time.Millisecond, store)

	assert.ErrorIs(t, <-done, context.DeadlineExceeded)
	assert.False(t, store.Connected())
}

func TestConnectStore_LateSuccess_ClosedNotPublished(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectClose()
	store := repositories.NewStoreHandle()

	done := ConnectStore(context.Background(), func(context.Context) (*gorm.DB, error) {
		time.Sleep(60 * time.Millisecond) // driver ignoring ctx
		return db, nil
	}, 10*time.Millisecond, store)

	assert.ErrorIs(t, <-done, context.DeadlineExceeded)
	assert.Eventually(t, func() bool { return mock.ExpectationsWereMet() == nil }, time.Second, 10*time.Millisecond)
	assert.False(t, store.Connected())
}

func TestDialector_MissingDSN(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres", "sqlserver"} {
		_, err := dialector(&Config{DBDriver: driver})
		assert.ErrorIs(t, err, ErrMissingDSN, driver)
	}
	_, err := dialector(&Config{DBDriver: "sqlite", SQLitePath: "x.db"})
	assert.NoError(t, err)
}

func TestInitDB_BadConfigDoesNotExit(t *testing.T) {
	db, err := InitDB(context.Background(), &Config{DBDriver: "postgres"})
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrMissingDSN)
}
