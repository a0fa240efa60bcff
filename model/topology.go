package model

import (
	"github.com/sheikhrachel/hexlife/rules"
)

// Topology selects the neighbor-adjacency policy of a board
type Topology int

const (
	// Square8 is the classic square grid with 8 Moore neighbors
	Square8 Topology = iota
	// Hex6 is a hexagonal grid with 6 neighbors on a row-offset layout
	Hex6
	// Hex12 extends Hex6 with 6 weighted second-tier neighbors
	Hex12
)

// ParseTopology maps a CLI selector ("8", "6" or "12") to a Topology
func ParseTopology(selector string) (Topology, error) {
	switch selector {
	case "8":
		return Square8, nil
	case "6":
		return Hex6, nil
	case "12":
		return Hex12, nil
	default:
		return 0, &UnknownTopologyError{Selector: selector}
	}
}

// String returns the selector form of the topology
func (t Topology) String() string {
	switch t {
	case Square8:
		return "8"
	case Hex6:
		return "6"
	case Hex12:
		return "12"
	}
	return "unknown"
}

// nextState applies the topology's survival/birth rule to one cell
func (t Topology) nextState(alive bool, score float64) bool {
	if t == Hex12 {
		return rules.ApplyFractionalRules(score, alive)
	}
	return rules.ApplyConwayRules(score, alive)
}
