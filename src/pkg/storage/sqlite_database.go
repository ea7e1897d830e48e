package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"roster/local-app/src/pkg/log"
	"roster/local-app/src/pkg/model"
)

// sqliteDSN points at a private in-memory database; nothing outlives the process.
const sqliteDSN = ":memory:?_foreign_keys=on"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS departments (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	name    TEXT NOT NULL UNIQUE,
	created DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS employees (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	department_id INTEGER NOT NULL REFERENCES departments(id),
	name          TEXT NOT NULL,
	created       DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department_id);
`

// SQLiteStore keeps the roster in an in-memory SQLite database
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLiteStore opens the in-memory database and creates the schema
func NewSQLiteStore(logger *log.Logger) (*SQLiteStore, error) {
	ctx := context.Background()
	logger.Info(ctx, "Opening SQLite database", log.Fields{"dsn": sqliteDSN})

	db, err := sql.Open("sqlite3", sqliteDSN)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Every pooled connection would otherwise get its own empty :memory: database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		logger.Error(ctx, "Failed to verify database connection", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		logger.Error(ctx, "Failed to initialize schema", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info(ctx, "SQLite database opened successfully", nil)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// EmployeeAdd appends name to department inside a single transaction
func (s *SQLiteStore) EmployeeAdd(department, name string) error {
	now := time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO departments (name, created) VALUES (?, ?)",
		department, now,
	); err != nil {
		return fmt.Errorf("failed to add department: %w", err)
	}

	var departmentID int64
	if err := tx.QueryRow("SELECT id FROM departments WHERE name = ?", department).Scan(&departmentID); err != nil {
		return fmt.Errorf("failed to look up department: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO employees (department_id, name, created) VALUES (?, ?, ?)",
		departmentID, name, now,
	); err != nil {
		return fmt.Errorf("failed to add employee: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Debug(context.Background(), "Employee row inserted", log.Fields{"departmentID": departmentID})
	return nil
}

// EmployeeList returns the employees of department in insertion order
func (s *SQLiteStore) EmployeeList(department string) ([]string, bool, error) {
	rows, err := s.db.Query(
		`SELECT e.name FROM employees e
		 JOIN departments d ON d.id = e.department_id
		 WHERE d.name = ?
		 ORDER BY e.id`,
		department,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, false, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, name)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, len(employees) > 0, nil
}

// DepartmentList returns every department with its employees, departments in creation order
func (s *SQLiteStore) DepartmentList() ([]model.Department, error) {
	rows, err := s.db.Query(
		`SELECT d.name, e.name FROM departments d
		 JOIN employees e ON e.department_id = d.id
		 ORDER BY d.id, e.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var departmentName, employeeName string
		if err := rows.Scan(&departmentName, &employeeName); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		last := len(departments) - 1
		if last < 0 || departments[last].Name != departmentName {
			departments = append(departments, model.Department{Name: departmentName})
			last++
		}
		departments[last].Employees = append(departments[last].Employees, employeeName)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// Close closes the connection to the SQLite database
func (s *SQLiteStore) Close() error {
	s.logger.Info(context.Background(), "Closing SQLite database", nil)
	if err := s.db.Close(); err != nil {
		s.logger.Error(context.Background(), "Failed to close SQLite database", log.Fields{"error": err})
		return fmt.Errorf("failed to close SQLite database: %w", err)
	}
	return nil
}
