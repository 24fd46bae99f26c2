//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/mkulima/duka/internal/cart"
	"github.com/mkulima/duka/internal/order"
	"github.com/mkulima/duka/internal/user"
	"github.com/mkulima/duka/internal/verification"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		initSMSClient,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		InitVerificationModule,
		wire.FieldsOf(new(*verification.Module), "Hdl"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
