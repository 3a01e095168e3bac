package components

import (
	"content-scheduler/internal/infra/mailer"
	"content-scheduler/internal/pkg/config"
	"content-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewMailer(cfg config.Config) *mailer.HTTPMailer {
	return mailer.NewHTTPMailer(cfg.Mailer)
}
