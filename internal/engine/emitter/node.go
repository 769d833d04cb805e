package emitter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pack/internal/adapters/codegen"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/features"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/styles"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/core/ports"
)

// NodeID is the unique identifier for the emitter Graft node.
const NodeID graft.ID = "engine.emitter"

func init() {
	graft.Register(graft.Node[*Emitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			features.NodeID,
			codegen.NodeID,
			styles.NodeID,
			fs.WriterNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Emitter, error) {
			detector, err := graft.Dep[ports.FeatureDetector](ctx)
			if err != nil {
				return nil, err
			}

			generator, err := graft.Dep[ports.CodeGenerator](ctx)
			if err != nil {
				return nil, err
			}

			substituter, err := graft.Dep[ports.StyleSubstituter](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.FileWriter](ctx)
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

			return New(detector, generator, substituter, writer, tracer, log), nil
		},
	})
}
