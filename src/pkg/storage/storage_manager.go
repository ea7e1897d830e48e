// Package storage provides the backends that hold the roster for the lifetime of the process.
package storage

import (
	"context"
	"errors"
	"fmt"

	"roster/local-app/src/pkg/log"
	"roster/local-app/src/pkg/model"
)

// StoreType represents the kind of roster backend
type StoreType string

const (
	Memory StoreType = "memory"
	SQLite StoreType = "sqlite"
)

// ErrUnknownStoreType is returned by NewStorage for an unsupported store_type.
var ErrUnknownStoreType = errors.New("unknown store type")

// RosterStore defines the operations every roster backend provides.
// Departments are created by EmployeeAdd only, so none is ever empty.
type RosterStore interface {
	EmployeeAdd(department, name string) error
	EmployeeList(department string) ([]string, bool, error)
	DepartmentList() ([]model.Department, error)
	Close() error
}

// NewStorage creates the roster backend selected by cfg.StoreType.
func NewStorage(cfg *model.Config, logger *log.Logger) (RosterStore, error) {
	storeType := StoreType(cfg.StoreType)
	logger.Info(context.Background(), "Initializing roster store", log.Fields{"storeType": storeType})

	switch storeType {
	case Memory, "":
		return NewMemoryStore(), nil
	case SQLite:
		store, err := NewSQLiteStore(logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStoreType, cfg.StoreType)
	}
}
