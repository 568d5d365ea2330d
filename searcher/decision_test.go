package searcher

import (
	"reversi/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests parallel MCTS (tree parallelization with virtual loss) on decision nodes
sequential:
- selection:
	- happy path: fully expanded node -> max UCT child + loss, child state
	- edge case: terminal node -> same node, same state
- expansion:
	- happy path: expandable node -> new added child + loss, child state
- backup:
	- happy path: outcome -> reverse loss, visits++, update rewards from the node player's perspective
concurrent: 3 race conditions
- shared expansion
- shared backup
- shared selection + backup
*/

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("selecting fully expanded node", func(t *testing.T) {
		maxMove := mockMove{id: 1}
		maxChild := &decision{rewards: 1, visits: 1}
		otherChild := &decision{rewards: 0, visits: 1}
		node := &decision{
			unexplored: []game.Move{},
			explored:   []game.Move{mockMove{id: 0}, maxMove},
			children:   []*decision{otherChild, maxChild},
			rewards:    1,
			visits:     2,
		}
		state := mockState{}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Same(t, maxChild, gotChild, "Node should select child with max policy value")
		require.Equal(t, 1+Loss, gotChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, gotChild.visits, "Child should apply a temporary loss")
		require.Equal(t, []game.Move{maxMove}, gotState.(mockState).played, "State should update by the move to the max policy child")
		require.True(t, gotSelected, "Node should perform selection")
		require.Equal(t, 1.0, node.rewards, "Node stats should not change")
		require.Equal(t, 2.0, node.visits, "Node stats should not change")
	})

	t.Run("selecting less visited child on equal value", func(t *testing.T) {
		lessVisited := &decision{rewards: 1, visits: 2}
		moreVisited := &decision{rewards: 5, visits: 10}
		node := &decision{
			explored: []game.Move{mockMove{id: 0}, mockMove{id: 1}},
			children: []*decision{moreVisited, lessVisited},
			visits:   12,
		}

		gotChild, _, gotSelected := node.SelectOrExpand(mockState{})

		require.Same(t, lessVisited, gotChild, "Exploration term should favour the less visited child")
		require.True(t, gotSelected)
	})

	t.Run("expanding node with unexplored moves", func(t *testing.T) {
		unexploredMove := mockMove{id: 1}
		node := &decision{
			unexplored: []game.Move{unexploredMove},
			explored:   []game.Move{mockMove{id: 0}},
			children:   []*decision{{rewards: 1, visits: 1}},
			visits:     1,
		}
		state := mockState{player: "player1", moves: []game.Move{}}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, Loss, gotChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 1.0, gotChild.visits, "Child should apply a temporary loss")
		require.Equal(t, "player1", gotChild.player, "Child should record the player who moved into it")
		require.Same(t, node, gotChild.parent)
		require.Equal(t, 2, len(node.children), "Node should add a new child")
		require.Empty(t, node.unexplored, "Move should no longer be unexplored")
		require.Equal(t, []game.Move{mockMove{id: 0}, unexploredMove}, node.explored)
		require.Equal(t, []game.Move{unexploredMove},
			gotState.(mockState).played, "State should update by the move to the unexplored child")
		require.False(t, gotSelected, "Node should perform expansion")
	})

	t.Run("stagnating on terminal node", func(t *testing.T) {
		node := &decision{}
		state := mockState{}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Same(t, node, gotChild, "Should return the same node")
		require.Equal(t, mockState{}, gotState, "Should return the same state")
		require.False(t, gotSelected, "Should not select any child or expand")
	})
}

func TestDecisionBackup(t *testing.T) {
	t.Run("recording win on root node", func(t *testing.T) {
		node := &decision{
			parent:  nil,
			player:  "player1",
			rewards: 0,
			visits:  0,
		}

		got := node.Backup("player1", Win)

		require.Nil(t, got, "Should return no parent")
		require.Equal(t, Win, node.rewards, "Should apply a win reward")
		require.Equal(t, 1.0, node.visits, "Should add a visit")
	})

	t.Run("recording win on child node", func(t *testing.T) {
		// Setup a node with a parent and a virtual loss
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "player1",
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup("player1", Win)

		require.Same(t, parent, got, "Should return the parent node")
		require.Equal(t, Win, node.rewards, "Should reverse virtual loss and add a win")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("recording loss on child node", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "player1",
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup("player2", Win)

		require.Same(t, parent, got, "Should return the parent node")
		require.Equal(t, Loss, node.rewards, "Should reverse virtual loss and add a loss")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("recording draw on child node", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "player1",
			rewards: Loss,
			visits:  1,
		}

		node.Backup(game.Draw, DrawScore)

		require.Equal(t, DrawScore, node.rewards, "Both players share a draw")
		require.Equal(t, 1.0, node.visits)
	})

	t.Run("recording partial score for the opponent", func(t *testing.T) {
		node := &decision{player: "player1"}

		node.Backup("player2", 0.75)

		require.InDelta(t, 0.25, node.rewards, 1e-9, "Node player should get the complement")
	})
}

func TestDecisionPolicy(t *testing.T) {
	node := &decision{
		explored: []game.Move{mockMove{id: 0}, mockMove{id: 1}},
		children: []*decision{{visits: 3}, {visits: 1}},
	}

	policy := node.Policy()

	require.InDelta(t, 0.75, policy[mockMove{id: 0}], 1e-9)
	require.InDelta(t, 0.25, policy[mockMove{id: 1}], 1e-9)
}

func TestDecisionRaceConditions(t *testing.T) {
	t.Run("concurrent expansion", func(t *testing.T) {
		// Setup a node with 2 unexplored moves
		node := &decision{
			unexplored: []game.Move{mockMove{id: 0}, mockMove{id: 1}},
			explored:   []game.Move{},
			children:   []*decision{},
		}
		baseState := mockState{moves: []game.Move{}}

		// Launch two goroutines to expand simultaneously
		var wg sync.WaitGroup
		type result struct {
			child    *decision
			state    mockState
			selected bool
		}
		var got [2]result

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				// Each goroutine gets its own copy of state
				state := mockState{moves: baseState.moves}
				gotChild, gotState, gotSelected := node.SelectOrExpand(state)
				got[i] = result{gotChild, gotState.(mockState), gotSelected}
			}()
		}
		wg.Wait()

		require.Equal(t, 2, len(node.children), "Node should have two children")

		for i := 0; i < 2; i++ {
			require.Equal(t, Loss, got[i].child.rewards, "Child should apply a temporary loss")
			require.Equal(t, 1.0, got[i].child.visits, "Child should apply a temporary loss")
			require.False(t, got[i].selected, "Node should be expanded")
			require.Contains(t, []game.Move{mockMove{id: 0}, mockMove{id: 1}}, got[i].state.played[0],
				"Node should expand with a legal move")
		}

		require.NotEqual(t, got[0].state.played[0], got[1].state.played[0],
			"Node should expand with different moves")
	})

	t.Run("concurrent backup", func(t *testing.T) {
		// Setup a node with 2 virtual losses
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "player1",
			rewards: Loss * 2,
			visits:  2,
		}

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				node.Backup("player1", Win)
			}()
		}
		wg.Wait()

		require.Equal(t, Win*2, node.rewards, "Node should reverse virtual losses and add two wins")
		require.Equal(t, 2.0, node.visits, "Node should reverse virtual losses and add two visits")
	})

	t.Run("concurrent selection and backup", func(t *testing.T) {
		// Setup a node with a child and a virtual loss
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "player1",
			rewards: Loss,
			visits:  3,
		}
		child := &decision{
			parent:  node,
			rewards: 0,
			visits:  1,
		}
		move := mockMove{id: 0}
		node.explored = []game.Move{move}
		node.children = []*decision{child}
		state := mockState{moves: []game.Move{}}

		var wg sync.WaitGroup
		wg.Add(2)

		var gotChild *decision
		var gotState game.State
		var gotSelected bool
		go func() {
			defer wg.Done()
			gotChild, gotState, gotSelected = node.SelectOrExpand(state)
		}()

		var gotParent *decision
		go func() {
			defer wg.Done()
			gotParent = node.Backup("player1", Win)
		}()

		wg.Wait()

		require.Same(t, child, gotChild, "Node should select the child")
		require.Equal(t, move, gotState.(mockState).played[0], "State should update by the move to the child")
		require.True(t, gotSelected, "Node should perform selection")
		require.Same(t, parent, gotParent, "Node should return its parent")

		require.Equal(t, Loss, child.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, child.visits, "Child should apply a temporary loss")
		require.Equal(t, Win, node.rewards, "Node should reverse virtual loss and add a win")
		require.Equal(t, 3.0, node.visits, "Node should reverse virtual loss and add a visit")
	})
}
