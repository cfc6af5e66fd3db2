package employee

import (
	"github.com/smallbiznis/staffhub/internal/employee/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	resource.Provide[domain.Employee, domain.EmployeeRequest, domain.EmployeeRequest](resource.Definition[domain.Employee]{
		Name:         resource.Employees,
		UniqueFields: []string{"email"},
	}),
)
