package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stage/internal/adapters/logger"    //nolint:depguard // Wired in app wiring
	"go.trai.ch/stage/internal/adapters/telemetry" //nolint:depguard // Wired in app wiring
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/stage/internal/engine/scene"
)

// Components bundles the resolved application objects handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

// AppNodeID is the unique identifier for the App Graft node.
const AppNodeID graft.ID = "app"

// ComponentsNodeID is the unique identifier for the Components Graft node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scene.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manager, err := graft.Dep[*scene.Manager](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[*telemetry.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manager, tracer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
