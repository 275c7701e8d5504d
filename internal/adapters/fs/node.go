package fs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stage/internal/core/ports"
)

// ResolverNodeID is the unique identifier for the fs resolver Graft node.
const ResolverNodeID graft.ID = "adapter.fs.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Resolver, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewResolver(cwd), nil
		},
	})
}
