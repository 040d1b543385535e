package export

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/varcss/internal/adapters/document" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "engine.renderer"

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{document.HostNodeID},
		Run: func(ctx context.Context) (*Renderer, error) {
			host, err := graft.Dep[*document.Host](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(host, NewFormatter(host)), nil
		},
	})
}
