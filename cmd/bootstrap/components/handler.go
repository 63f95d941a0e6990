package components

import (
	"bookstore-api/internal/handler"
	"bookstore-api/internal/handler/api"
	"bookstore-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookHandler,
		api.NewCustomerHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			book *api.BookHandler,
			customer *api.CustomerHandler,
			reservation *api.ReservationHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Book:        book,
				Customer:    customer,
				Reservation: reservation,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
