package components

import (
	repo_impl "content-scheduler/internal/infra/repository"
	"content-scheduler/internal/usecase/commands"
	"content-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewJobRepository,
			fx.As(new(commands.JobRepository)),
		),
		fx.Annotate(
			repo_impl.NewContentStore,
			fx.As(new(commands.ContentSource)),
		),
		fx.Annotate(
			repo_impl.NewSubscriberStore,
			fx.As(new(commands.RecipientSource)),
		),
		// Read-side repository for queries
		fx.Annotate(
			repo_impl.NewJobReadStore,
			fx.As(new(queries.JobReadStore)),
		),
	),
)
