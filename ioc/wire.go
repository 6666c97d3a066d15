//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/showcase/internal/interactive"
	"github.com/ecodeclub/showcase/internal/project"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitStorageConfig)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		interactive.InitModule,
		project.InitModule,
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		wire.FieldsOf(new(*project.Module), "Hdl", "SweepJob"),
		initGinxServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
