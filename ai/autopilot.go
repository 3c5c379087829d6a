package ai

import "gridsnake/game"

// Autopilot drives a session through the same key path a player uses.
type Autopilot struct {
	Agent *QLearning

	last       State
	lastAction Action
	primed     bool
}

func NewAutopilot(seed uint64) *Autopilot {
	return &Autopilot{Agent: NewQLearning(seed)}
}

// Next chooses the key to press before the upcoming tick.
func (p *Autopilot) Next(snap game.Snapshot) game.Key {
	p.last = Observe(snap)
	p.lastAction = p.Agent.GetAction(p.last)
	p.primed = true
	return p.lastAction.Key()
}

// Learn feeds the outcome of the tick that followed Next back to the agent.
func (p *Autopilot) Learn(snap game.Snapshot, res game.TickResult) float64 {
	if !p.primed {
		return 0
	}
	p.primed = false
	return p.Agent.Update(p.last, p.lastAction, Observe(snap), res)
}
