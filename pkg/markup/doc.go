// Package markup converts the board's lightweight markup into a display
// fragment and splices toolbar markup into an editor buffer.
//
// Rendering is an ordered list of substitutions, not a parser: later rules see
// the output of earlier ones, so the rule order is part of the behaviour.
// Ambiguous input such as nested emphasis is resolved by that order and is
// not guaranteed to match CommonMark.
package markup
