package model

import (
	"strconv"
	"strings"
)

// Department groups the employees added to it, in the order they were added.
type Department struct {
	Name      string
	Employees []string
}

// String renders the department as `name: ["a", "b"]`.
func (d Department) String() string {
	var sb strings.Builder
	sb.WriteString(d.Name)
	sb.WriteString(": [")
	for i, employee := range d.Employees {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(employee))
	}
	sb.WriteString("]")
	return sb.String()
}
