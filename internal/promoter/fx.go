package promoter

import (
	"github.com/smallbiznis/staffhub/internal/promoter/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("promoter.service",
	resource.Provide[domain.PromoterGroup, domain.PromoterGroupRequest, domain.PromoterGroupRequest](resource.Definition[domain.PromoterGroup]{
		Name: resource.PromoterGroups,
	}),
	resource.Provide[domain.Promoter, domain.PromoterRequest, domain.PromoterRequest](resource.Definition[domain.Promoter]{
		Name: resource.Promoters,
	}),
	resource.ProvideRelation(resource.Relation{
		Parent: resource.PromoterGroups,
		Path:   "members",
		Child:  resource.Promoters,
		Column: "promoter_group_id",
	}),
)
