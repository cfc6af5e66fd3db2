package inventory

import (
	"github.com/smallbiznis/staffhub/internal/inventory/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	resource.Provide[domain.Inventory, domain.InventoryRequest, domain.InventoryRequest](resource.Definition[domain.Inventory]{
		Name: resource.Inventories,
	}),
)
