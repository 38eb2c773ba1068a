package simplex

import "github.com/nodesketch/dotlayout/graph"

// Postprocess selects what, if anything, Run does after reaching an
// optimal ranking.
type Postprocess int

const (
	// PostprocessNone leaves the optimal ranking as found.
	PostprocessNone Postprocess = iota
	// PostprocessCenter additionally shifts the child subtree of every
	// zero-cut-value tree edge by half the slack of the edge that would
	// replace it.
	PostprocessCenter
)

// Option configures a Run call.
type Option func(*options)

type options struct {
	initialRanks *graph.NodeMap[int32]
	postprocess  Postprocess
	dumpPrefix   string
}

func defaultOptions() options {
	return options{postprocess: PostprocessNone}
}

// WithInitialRanks seeds the initial feasible ranking instead of
// deriving one from a topological walk - used by xcoord to hint the
// auxiliary graph's solver toward the existing per-rank ordering.
func WithInitialRanks(ranks *graph.NodeMap[int32]) Option {
	return func(o *options) { o.initialRanks = ranks }
}

// WithPostprocess sets the postprocess mode. Default is PostprocessNone.
func WithPostprocess(p Postprocess) Option {
	return func(o *options) { o.postprocess = p }
}

// WithDumpPrefix enables a GS_DUMP_STEPS-gated debug dump of the input
// graph, written after ranking under the given pass name.
func WithDumpPrefix(prefix string) Option {
	return func(o *options) { o.dumpPrefix = prefix }
}
