package bootstrap

import (
	"content-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.MailerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
