package commitment

import (
	"github.com/smallbiznis/staffhub/internal/commitment/domain"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("commitment.service",
	resource.Provide[domain.Commitment, domain.CommitmentRequest, domain.CommitmentRequest](resource.Definition[domain.Commitment]{
		Name: resource.Commitments,
	}),
)
