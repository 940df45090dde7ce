package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"VisitorIntake/repositories"

	"gorm.io/gorm"
)

// DialFunc opens the visitor store. Production code binds InitDB to the loaded Config.
type DialFunc func(ctx context.Context) (*gorm.DB, error)

// ConnectStore runs the single connect attempt on its own goroutine and
// returns at once, so the HTTP server never waits on the store.
// On success the repository is published to store; on failure or timeout the
// handle stays absent for the life of the process (no retry).
// The channel yields the outcome once and is then closed.
func ConnectStore(parent context.Context, dial DialFunc, timeout time.Duration, store *repositories.StoreHandle) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := connect(parent, dial, timeout, store)
		if err != nil {
			log.Printf("[db] store unavailable, visitors will not be persisted: %v", err)
		} else {
			log.Printf("[db] store connected")
		}
		done <- err
	}()
	return done
}

type dialResult struct {
	db  *gorm.DB
	err error
}

func connect(parent context.Context, dial DialFunc, timeout time.Duration, store *repositories.StoreHandle) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	res := make(chan dialResult, 1)
	go func() {
		db, err := dial(ctx)
		res <- dialResult{db: db, err: err}
	}()

	select {
	case r := <-res:
		if r.err != nil {
			return fmt.Errorf("connect store: %w", r.err)
		}
		if err := ctx.Err(); err != nil { // finished, but past the deadline
			closeDB(r.db)
			return fmt.Errorf("connect store: %w", err)
		}
		store.Publish(repositories.NewVisitorRepository(r.db))
		return nil
	case <-ctx.Done():
		go func() { // a driver that ignores ctx may still hand back a connection
			if r := <-res; r.db != nil {
				closeDB(r.db)
			}
		}()
		return fmt.Errorf("connect store: %w", ctx.Err())
	}
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
