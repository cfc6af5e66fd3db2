package timetracking

import (
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/timetracking/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("timetracking.service",
	resource.Provide[domain.TimeTracking, domain.TimeTrackingRequest, domain.TimeTrackingRequest](resource.Definition[domain.TimeTracking]{
		Name: resource.TimeTrackings,
	}),
)
