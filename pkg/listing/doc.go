// Package listing turns a collection of questions and the current query
// (search text, tag filter, sort key, page) into the slice of items shown on
// screen. Every function is pure: inputs are never mutated and no state is
// kept between calls.
package listing
