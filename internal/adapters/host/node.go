package host

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the host Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[*Host]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Host, error) {
			return New(), nil
		},
	})
}
