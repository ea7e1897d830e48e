package storage

import "roster/local-app/src/pkg/model"

// MemoryStore keeps the roster in a map, remembering the order departments were created in.
type MemoryStore struct {
	departments map[string][]string
	order       []string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		departments: make(map[string][]string),
	}
}

// EmployeeAdd appends name to department, creating the department if needed.
func (s *MemoryStore) EmployeeAdd(department, name string) error {
	employees, ok := s.departments[department]
	if !ok {
		s.order = append(s.order, department)
	}
	s.departments[department] = append(employees, name)
	return nil
}

// EmployeeList returns a copy of the employees of department and whether it exists.
func (s *MemoryStore) EmployeeList(department string) ([]string, bool, error) {
	employees, ok := s.departments[department]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), employees...), true, nil
}

// DepartmentList returns every department in creation order.
func (s *MemoryStore) DepartmentList() ([]model.Department, error) {
	departments := make([]model.Department, 0, len(s.order))
	for _, name := range s.order {
		departments = append(departments, model.Department{
			Name:      name,
			Employees: append([]string(nil), s.departments[name]...),
		})
	}
	return departments, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
