package game

import "fmt"

// Placement is a disc placed at (X, Y), or a forced pass when Pass is set.
type Placement struct {
	X    int
	Y    int
	Pass bool
}

// PassMove is played when the side to move has no legal placement.
var PassMove = Placement{Pass: true}

func (p Placement) IsPass() bool {
	return p.Pass
}

func (p Placement) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

func (p Placement) String() string {
	if p.Pass {
		return "pass"
	}
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
