// Package db declares the storage interfaces the board is built on, and the
// errors every backend reports.
package db

// Stats are the totals shown in the community panel.
type Stats struct {
	Questions int
	Answers   int
	Users     int
}
