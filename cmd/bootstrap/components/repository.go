package components

import (
	"gearup/internal/infra/db"
	repo_impl "gearup/internal/infra/repository"
	"gearup/internal/usecase/commands"
	"gearup/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		db.NewTxRunner,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingStore)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCourtRepository,
			fx.As(new(commands.CourtStore)),
			fx.As(new(queries.CourtReadStore)),
			fx.As(new(queries.CourtListReadStore)),
		),
		fx.Annotate(
			repo_impl.NewVenueRepository,
			fx.As(new(commands.VenueStore)),
			fx.As(new(queries.VenueReadStore)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserStore)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentStore)),
		),
		fx.Annotate(
			repo_impl.NewPaymentOrderRepository,
			fx.As(new(commands.PaymentOrderStore)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
