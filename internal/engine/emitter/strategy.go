package emitter

import "go.trai.ch/pack/internal/core/domain"

// Plan is the partition of the configured output targets into the two packaging strategies.
type Plan struct {
	SelfContained []domain.WebComponentTarget
	Bundled       []domain.BuildTarget
}

// Empty reports whether no target receives output from this stage.
func (p Plan) Empty() bool {
	return len(p.SelfContained) == 0 && len(p.Bundled) == 0
}

// SelectTargets partitions targets by strategy. www and dist builds only receive a bundle
// while the app is smaller than domain.MinForLazyLoad; larger apps are left to the lazy
// loading pipeline. Target order is preserved within each strategy.
func SelectTargets(targets []domain.OutputTarget, moduleCount int) Plan {
	var plan Plan
	small := moduleCount < domain.MinForLazyLoad

	for _, t := range targets {
		switch t := t.(type) {
		case domain.WebComponentTarget:
			plan.SelfContained = append(plan.SelfContained, t)
		case domain.BuildTarget:
			if small && (t.Type == domain.KindWWW || t.Type == domain.KindDist) {
				plan.Bundled = append(plan.Bundled, t)
			}
		case domain.AuxTarget:
		}
	}

	return plan
}
