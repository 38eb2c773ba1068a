// Package tracelog implements a small leveled logger wrapping the
// standard library's log.Logger, in the style of the ecosystem's
// calmh/logger package: a fixed set of levels, one method pair
// (Xln/Xf) per level, and a minimum level below which messages are
// dropped rather than written.
//
// Why: the CLI's -l/--log-level flag needs a filterable minimum level,
// which the stdlib log package does not provide on its own.
package tracelog
