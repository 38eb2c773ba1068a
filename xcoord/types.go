package xcoord

// NodeWidth is the minimum horizontal separation, in layout units,
// between two nodes that share a rank and sit next to each other.
const NodeWidth = 50

// Option configures a Compute call.
type Option func(*options)

type options struct {
	dumpPrefix string
}

func defaultOptions() options {
	return options{}
}

// WithDumpPrefix enables GS_DUMP_STEPS-gated debug dumps of the
// auxiliary graph built internally by Compute.
func WithDumpPrefix(prefix string) Option {
	return func(o *options) { o.dumpPrefix = prefix }
}
