package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/varcss/internal/adapters/logger" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/varcss/internal/core/ports"
)

// NodeID is the unique identifier for the shell server Graft node.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(log), nil
		},
	})
}
