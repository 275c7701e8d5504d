package scene

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stage/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stage/internal/adapters/host"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stage/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stage/internal/core/ports"
)

// NodeID is the unique identifier for the scene manager Graft node.
const NodeID graft.ID = "engine.scene"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			host.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			resolver, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			h, err := graft.Dep[*host.Host](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewManager(resolver, h, h, log), nil
		},
	})
}
