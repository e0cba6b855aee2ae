package player

import (
	"bufio"
	"fmt"
	"io"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"

	"github.com/pkg/errors"
)

var ErrInputClosed = errors.New("input closed")

// Player represents one side of a game.
type Player interface {
	Name() string
	// ChooseMove returns the move to play in state. It is only called while
	// the game is not over.
	ChooseMove(state game.State) (game.Move, error)
}

// Computer plays the moves of an agent.
type Computer struct {
	name  string
	agent agent.Agent
}

func NewComputer(name string, a agent.Agent) *Computer {
	return &Computer{name: name, agent: a}
}

func (c *Computer) Name() string { return c.name }

func (c *Computer) ChooseMove(state game.State) (game.Move, error) {
	return c.agent.SelectAction(state), nil
}

// Metric returns the statistics of the agent's last search, if it keeps any.
func (c *Computer) Metric() (metrics.SearchMetric, bool) {
	metered, ok := c.agent.(agent.Metered)
	if !ok {
		return metrics.SearchMetric{}, false
	}
	return metered.Metric(), true
}

// Human reads moves line by line, e.g. "2 3" or "pass", and asks again
// until the move is legal.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Name() string { return h.name }

func (h *Human) ChooseMove(state game.State) (game.Move, error) {
	fmt.Fprintf(h.out, "\n%s\n", state)
	for {
		fmt.Fprintf(h.out, "%s (%c) to move, enter \"row col\" or \"pass\": ", h.name, state.Turn().Symbol())
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Move{}, errors.Wrap(err, "failed to read move")
			}
			return game.Move{}, ErrInputClosed
		}

		move, err := game.ParseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		if _, err := state.Next(move); err != nil {
			fmt.Fprintf(h.out, "illegal move %s\n", move)
			continue
		}
		return move, nil
	}
}
