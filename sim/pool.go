// Implements the AgentPool, the fixed-capacity set of identical agents that
// calls compete for. Grants, queues and releases agent units, keeping the
// busy-count invariant checked on every transition.

package sim

// AgentPool is a fixed-capacity resource of interchangeable agents.
// A call either gets an agent immediately on Request or joins the waiting
// queue; Release hands the freed agent to the head of the queue at once.
//
// Invariant: 0 <= busy <= capacity at all times. Violations abort the run.
type AgentPool struct {
	capacity   int
	busy       int
	freeAgents []int // stack of free agent indexes
	waiting    *WaitQueue
	discipline QueueDiscipline
}

// NewAgentPool creates a pool with the given capacity and queue discipline.
// A nil discipline defaults to FIFO.
func NewAgentPool(capacity int, discipline QueueDiscipline) (*AgentPool, error) {
	if capacity < 1 {
		return nil, &InvalidConfigError{Field: "num_agents", Value: float64(capacity)}
	}
	if discipline == nil {
		discipline = &FIFODiscipline{}
	}
	free := make([]int, capacity)
	for i := range free {
		free[i] = capacity - 1 - i // pop order: agent 0 first
	}
	return &AgentPool{
		capacity:   capacity,
		freeAgents: free,
		waiting:    &WaitQueue{},
		discipline: discipline,
	}, nil
}

// SetDiscipline swaps the queue discipline. Must be called before the run
// starts; swapping mid-run changes the wait-time distribution.
func (p *AgentPool) SetDiscipline(d QueueDiscipline) {
	if d == nil {
		d = &FIFODiscipline{}
	}
	p.discipline = d
}

// Request is called by a call on arrival. If an agent is free it is granted
// immediately: the call's ServiceStart is recorded and its state becomes
// InService. Otherwise the call joins the waiting queue.
func (p *AgentPool) Request(c *Call, now float64) (granted bool, err error) {
	if err := p.checkInvariant(); err != nil {
		return false, err
	}
	if p.busy < p.capacity {
		p.grant(c, now)
		return true, nil
	}
	c.State = StateWaiting
	p.waiting.Enqueue(c)
	return false, nil
}

// Release is called on service completion. It frees the agent held by c and,
// if the waiting queue is non-empty, grants the freed agent to the head of
// the queue immediately, recording that call's ServiceStart as now.
// Returns the newly granted call, or nil if the queue was empty.
func (p *AgentPool) Release(c *Call, now float64) (*Call, error) {
	if c.Agent < 0 {
		return nil, &PoolInvariantError{Busy: p.busy, Capacity: p.capacity}
	}
	p.busy--
	p.freeAgents = append(p.freeAgents, c.Agent)
	c.Agent = -1
	if err := p.checkInvariant(); err != nil {
		return nil, err
	}
	if p.waiting.Len() == 0 {
		return nil, nil
	}
	p.waiting.Reorder(func(calls []*Call) {
		p.discipline.OrderQueue(calls, now)
	})
	next := p.waiting.Dequeue()
	p.grant(next, now)
	return next, nil
}

func (p *AgentPool) grant(c *Call, now float64) {
	agent := p.freeAgents[len(p.freeAgents)-1]
	p.freeAgents = p.freeAgents[:len(p.freeAgents)-1]
	p.busy++
	c.Agent = agent
	c.ServiceStart = now
	c.State = StateInService
}

func (p *AgentPool) checkInvariant() error {
	if p.busy < 0 || p.busy > p.capacity {
		return &PoolInvariantError{Busy: p.busy, Capacity: p.capacity}
	}
	return nil
}

// Busy returns the number of agents currently serving a call.
func (p *AgentPool) Busy() int { return p.busy }

// Capacity returns the pool's fixed agent count.
func (p *AgentPool) Capacity() int { return p.capacity }

// QueueLen returns the number of calls currently waiting for an agent.
func (p *AgentPool) QueueLen() int { return p.waiting.Len() }
