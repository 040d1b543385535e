package document

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/varcss/internal/adapters/config" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the document store Graft node.
	StoreNodeID graft.ID = "adapter.document_store"
	// HostNodeID is the unique identifier for the host Graft node.
	HostNodeID graft.ID = "adapter.host"
)

func init() {
	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.DocumentStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.DocumentPath), nil
		},
	})

	graft.Register(graft.Node[*Host]{
		ID:        HostNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (*Host, error) {
			store, err := graft.Dep[ports.DocumentStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewHost(store)
		},
	})
}
