package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pack/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pack/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pack/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pack/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/pack/internal/engine/emitter"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			emitter.NodeID,
			cas.NodeID,
			watcher.WatcherNodeID,
			watcher.ScriptCacheNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	em, err := graft.Dep[*emitter.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.OutputStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	scripts, err := graft.Dep[*watcher.ScriptCache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, em, store, w, scripts, log), nil
}
