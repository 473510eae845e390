package advanced

import "log/slog"

// Numeric tolerances used while partitioning. All distances are in input
// coordinate units, so they do not scale with the input.
type Tolerances struct {
	// Points closer than this to a splitting line are on it.
	Plane float64 `yaml:"plane"`
	// Slack on the intersection parameter t beyond [0, 1].
	Param float64 `yaml:"param"`
	// Component-wise tolerance when comparing normals of coplanar edges.
	Normal float64 `yaml:"normal"`
	// Intersection denominators smaller than this are treated as parallel.
	Denominator float64 `yaml:"denominator"`
}

var DefaultTolerances = Tolerances{
	Plane:       1e-4,
	Param:       1e-4,
	Normal:      1e-4,
	Denominator: 1e-12,
}

// Each split edge costs this much in a splitter's score, on top of the
// front/back imbalance.
const DefaultSplitPenalty = 2

type Option func(*Partitioner)

// Zero fields in tol fall back to the defaults.
func WithTolerances(tol Tolerances) Option {
	return func(p *Partitioner) {
		p.tolerances = tol.withDefaults()
	}
}

// Log through l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Partitioner) {
		p.logger = l
	}
}

func WithSplitPenalty(penalty int) Option {
	return func(p *Partitioner) {
		if penalty >= 0 {
			p.splitPenalty = penalty
		}
	}
}

func (tol Tolerances) withDefaults() Tolerances {
	if tol.Plane <= 0 {
		tol.Plane = DefaultTolerances.Plane
	}
	if tol.Param <= 0 {
		tol.Param = DefaultTolerances.Param
	}
	if tol.Normal <= 0 {
		tol.Normal = DefaultTolerances.Normal
	}
	if tol.Denominator <= 0 {
		tol.Denominator = DefaultTolerances.Denominator
	}
	return tol
}
