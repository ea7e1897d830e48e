// Package data provides data management functionality for the roster application.
// It sits between the session command handlers and the storage backend.
package data

import (
	"context"
	"fmt"

	"roster/local-app/src/pkg/log"
	"roster/local-app/src/pkg/model"
	"roster/local-app/src/pkg/storage"
)

// RosterManager coordinates all roster operations
type RosterManager struct {
	store  storage.RosterStore
	logger *log.Logger
}

// NewRosterManager creates a new RosterManager over store
func NewRosterManager(store storage.RosterStore, logger *log.Logger) *RosterManager {
	return &RosterManager{
		store:  store,
		logger: logger,
	}
}

// EmployeeAdd appends an employee to a department, creating the department on first use.
func (rm *RosterManager) EmployeeAdd(ctx context.Context, department, name string) error {
	rm.logger.Info(ctx, "Adding employee", log.Fields{"department": department, "name": name})

	if err := rm.store.EmployeeAdd(department, name); err != nil {
		rm.logger.Error(ctx, "Failed to add employee", log.Fields{"error": err, "department": department})
		return fmt.Errorf("failed to add employee: %w", err)
	}

	return nil
}

// DepartmentGet returns the department and whether it exists.
func (rm *RosterManager) DepartmentGet(ctx context.Context, department string) (model.Department, bool, error) {
	rm.logger.Debug(ctx, "Retrieving department", log.Fields{"department": department})

	employees, ok, err := rm.store.EmployeeList(department)
	if err != nil {
		rm.logger.Error(ctx, "Failed to list employees", log.Fields{"error": err, "department": department})
		return model.Department{}, false, fmt.Errorf("failed to list department %s: %w", department, err)
	}
	if !ok {
		rm.logger.Warn(ctx, "Department not found", log.Fields{"department": department})
		return model.Department{}, false, nil
	}

	return model.Department{Name: department, Employees: employees}, true, nil
}

// DepartmentList returns all departments in creation order.
func (rm *RosterManager) DepartmentList(ctx context.Context) ([]model.Department, error) {
	departments, err := rm.store.DepartmentList()
	if err != nil {
		rm.logger.Error(ctx, "Failed to list departments", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	rm.logger.Debug(ctx, "Departments retrieved", log.Fields{"count": len(departments)})
	return departments, nil
}
