package resource

import "go.uber.org/fx"

// Provide registers the entity as an HTTP resource.
func Provide[T any, C Creator[T], U Updater[T]](def Definition[T]) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(p Params) Endpoint { return New[T, C, U](p, def) },
			fx.ResultTags(`group:"endpoints"`),
		),
	)
}

// ProvideRelation registers a nested listing.
func ProvideRelation(rel Relation) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func() Relation { return rel },
			fx.ResultTags(`group:"relations"`),
		),
	)
}
