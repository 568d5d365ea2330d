package searcher

import (
	"math"
	"reversi/game"
	"sync"
)

// decision is a tree node for a state. Its statistics are kept from the perspective of
// player, the player whose move led into the node, so a parent always maximizes.
type decision struct {
	sync.Mutex
	parent     *decision
	player     string
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, player string, state game.State) *decision {
	return &decision{
		parent:     parent,
		player:     player,
		hash:       state.Hash(),
		unexplored: state.LegalMoves(),
	}
}

// SelectOrExpand descends one level. It expands an unexplored move if there is one,
// otherwise it selects the child with the highest UCT score. Either way the returned child
// carries a virtual loss until it is backed up. selected is false when the walk should
// stop: after an expansion or on a terminal node, which returns itself.
func (d *decision) SelectOrExpand(state game.State) (child *decision, childState game.State, selected bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) > 0 { // Expandable node
		last := len(d.unexplored) - 1
		move := d.unexplored[last]
		d.unexplored = d.unexplored[:last]

		childState = state.Play(move)
		child = newDecision(d, state.Player(), childState)
		child.applyLoss()
		d.explored = append(d.explored, move)
		d.children = append(d.children, child)
		return child, childState, false
	}

	if len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) pickChild() int {
	N := 0.0
	for _, child := range d.children {
		N += child.Visits()
	}
	policy := newUCT(CSquared, math.Max(N, 1))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := child.score(policy); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(policy *uct) float64 {
	d.Lock()
	defer d.Unlock()

	if d.visits == 0 { // Prioritize unvisited nodes
		return math.Inf(1)
	}
	return policy.evaluate(d.rewards, d.visits)
}

// Backup records an outcome in which player earned score and the other player 1 - score,
// and returns the parent to continue with.
func (d *decision) Backup(player string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	if d.player == player {
		d.rewards += score
	} else {
		d.rewards += Win - score
	}
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Visits() float64 {
	d.Lock()
	defer d.Unlock()

	return d.visits
}

// child returns the child reached by move, if it has been expanded.
func (d *decision) child(move game.Move) *decision {
	d.Lock()
	defer d.Unlock()

	for i, m := range d.explored {
		if m == move {
			return d.children[i]
		}
	}
	return nil
}

// Policy returns the visit share of every expanded move.
func (d *decision) Policy() map[game.Move]float64 {
	d.Lock()
	moves := make([]game.Move, len(d.explored))
	copy(moves, d.explored)
	children := make([]*decision, len(d.children))
	copy(children, d.children)
	d.Unlock()

	visits := make([]float64, len(children))
	for i, child := range children {
		visits[i] = child.Visits()
	}
	return visitPolicy(moves, visits)
}
