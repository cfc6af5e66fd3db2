package event

import (
	"github.com/smallbiznis/staffhub/internal/event/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("event.service",
	resource.Provide[domain.Event, domain.EventRequest, domain.EventRequest](resource.Definition[domain.Event]{
		Name: resource.Events,
	}),
)
