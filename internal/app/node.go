package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/varcss/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/adapters/document"  //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/varcss/internal/engine/export"
	"go.trai.ch/varcss/internal/engine/materialize"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			export.NodeID,
			materialize.NodeID,
			document.StoreNodeID,
			document.HostNodeID,
			watcher.NodeID,
			shell.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	renderer, err := graft.Dep[*export.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	materializer, err := graft.Dep[*materialize.Materializer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, err
	}

	host, err := graft.Dep[*document.Host](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	server, err := graft.Dep[*shell.Server](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(renderer, materializer, store, host, w, server, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	if j, ok := log.(interface{ SetJSON(enable bool) }); ok && cfg.JSONLogs {
		j.SetJSON(true)
	}

	return &Components{
		App:    app,
		Logger: log,
		Config: cfg,
	}, nil
}
