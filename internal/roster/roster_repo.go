package roster

import (
	"context"

	"go-roster/internal/employee"
)

type Repository interface {
	Replace(ctx context.Context, employees []*employee.Employee)
	FindAll(ctx context.Context) []*employee.Employee
	Count(ctx context.Context) int
}

// repository keeps the session's roster in memory, in file order.
type repository struct {
	employees []*employee.Employee
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) Replace(ctx context.Context, employees []*employee.Employee) {
	r.employees = append([]*employee.Employee(nil), employees...)
}

// FindAll returns the stored records. The slice is a copy, the records are shared.
func (r *repository) FindAll(ctx context.Context) []*employee.Employee {
	return append([]*employee.Employee(nil), r.employees...)
}

func (r *repository) Count(ctx context.Context) int {
	return len(r.employees)
}
