// Package domain holds follow graph core types independent of transport or storage
package domain

// Counts summarizes one user's position in the graph
type Counts struct {
	Followers int64
	Following int64
}
