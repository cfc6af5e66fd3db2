package offer

import (
	"github.com/smallbiznis/staffhub/internal/offer/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("offer.service",
	resource.Provide[domain.Offer, domain.OfferRequest, domain.OfferRequest](resource.Definition[domain.Offer]{
		Name: resource.Offers,
	}),
	resource.ProvideRelation(resource.Relation{
		Parent: resource.OfferStates,
		Path:   "offers",
		Child:  resource.Offers,
		Column: "offer_state_id",
	}),
)
