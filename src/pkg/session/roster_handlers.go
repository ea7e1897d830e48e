package session

import (
	"context"

	"roster/local-app/src/pkg/model"
)

// UnknownDepartmentMessage is shown when listing a department that was never added to.
const UnknownDepartmentMessage = "I don't recognize that department!"

// handleEmployeeAdd handles the add command; it prints nothing on success
func handleEmployeeAdd(ctx context.Context, s *Session, cmd model.Command) ([]string, error) {
	if err := s.Roster.EmployeeAdd(ctx, cmd.Department, cmd.Name); err != nil {
		return nil, err
	}
	return nil, nil
}

// handleDepartmentList handles the list command
func handleDepartmentList(ctx context.Context, s *Session, cmd model.Command) ([]string, error) {
	dept, ok, err := s.Roster.DepartmentGet(ctx, cmd.Department)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{UnknownDepartmentMessage}, nil
	}
	return []string{dept.String()}, nil
}

// handleDepartmentListAll handles the all command, one line per department
func handleDepartmentListAll(ctx context.Context, s *Session, _ model.Command) ([]string, error) {
	departments, err := s.Roster.DepartmentList(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(departments))
	for _, dept := range departments {
		lines = append(lines, dept.String())
	}
	return lines, nil
}
