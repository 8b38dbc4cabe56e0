// Package cli builds the cobra command shared by the puzzle calculators.
//
// Each calculator supplies a [Program] describing its help text and its
// [Calculator]. The command resolves configuration in the order
// defaults < config file < ADVENTCALC_* environment < flags, runs the
// calculation once and prints the answers. With --watch it keeps running
// and recalculates whenever the input file changes.
package cli
