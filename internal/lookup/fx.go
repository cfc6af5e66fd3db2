package lookup

import (
	"github.com/smallbiznis/staffhub/internal/lookup/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

func plain[T any, PT domain.Attributed[T]](name string) fx.Option {
	return resource.Provide[T, domain.Request[T, PT], domain.Request[T, PT]](resource.Definition[T]{Name: name})
}

var Module = fx.Module("lookup.service",
	plain[domain.CommitmentState](resource.CommitmentStates),
	plain[domain.EventState](resource.EventStates),
	plain[domain.OfferState](resource.OfferStates),
	plain[domain.PaymentState](resource.PaymentStates),
	plain[domain.TimeTrackingState](resource.TimeTrackingStates),
	plain[domain.Gender](resource.Genders),
	plain[domain.InventoryCondition](resource.InventoryConditions),
	plain[domain.Skill](resource.Skills),
	plain[domain.TimeTrackingChannel](resource.TimeTrackingChannels),
	resource.Provide[domain.Country, domain.CountryRequest, domain.CountryRequest](resource.Definition[domain.Country]{
		Name:         resource.Countries,
		UniqueFields: []string{"name"},
	}),
	resource.Provide[domain.Department, domain.DepartmentRequest, domain.DepartmentRequest](resource.Definition[domain.Department]{
		Name:         resource.Departments,
		UniqueFields: []string{"name"},
	}),
	resource.Provide[domain.PriceGroup, domain.PriceGroupRequest, domain.PriceGroupRequest](resource.Definition[domain.PriceGroup]{
		Name: resource.PriceGroups,
	}),
	resource.Provide[domain.ServiceArea, domain.ServiceAreaRequest, domain.ServiceAreaRequest](resource.Definition[domain.ServiceArea]{
		Name: resource.ServiceAreas,
	}),
)
