package customer

import (
	"github.com/smallbiznis/staffhub/internal/customer/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	resource.Provide[domain.Customer, domain.CustomerRequest, domain.CustomerRequest](resource.Definition[domain.Customer]{
		Name:         resource.Customers,
		UniqueFields: []string{"email"},
	}),
)
