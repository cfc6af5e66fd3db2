package location

import (
	"github.com/smallbiznis/staffhub/internal/location/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("location.service",
	resource.Provide[domain.Location, domain.LocationRequest, domain.LocationRequest](resource.Definition[domain.Location]{
		Name: resource.Locations,
	}),
)
