//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/arscene/internal/core/events/bus"
	"github.com/zeusync/arscene/internal/core/native"
	"github.com/zeusync/arscene/internal/core/native/memory"
	"github.com/zeusync/arscene/internal/core/nodes"
	"github.com/zeusync/arscene/internal/core/observability/log"
)

func provideLog(logger *log.Logger) log.Log {
	return logger
}

func provideEngine(logger log.Log) *memory.Engine {
	return memory.New(memory.WithLogger(logger))
}

func provideScene(engine native.PlaneEngine, events bus.EventBus, logger log.Log) *nodes.Scene {
	return nodes.NewScene(engine, nodes.WithEventBus(events), nodes.WithSceneLogger(logger))
}

var SceneSet = wire.NewSet(
	log.Provide,
	provideLog,
	provideEngine,
	wire.Bind(new(native.PlaneEngine), new(*memory.Engine)),
	bus.New,
	provideScene,
)

func ProvideScene() *nodes.Scene {
	wire.Build(SceneSet)
	return nil
}
