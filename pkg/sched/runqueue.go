package sched

// Runqueue holds every task a Policy may consider, plus the task it most
// recently picked. A plain slice is sufficient here, unlike the
// arena+index scheme pageframe uses for its free-lists, since the
// runqueue never needs O(1) unlink of an arbitrary element by raw index.
type Runqueue struct {
	Tasks []*Task
	Curr  *Task
}

// NewRunqueue builds an empty runqueue.
func NewRunqueue() *Runqueue {
	return &Runqueue{}
}

// Add appends a task to the runqueue, transitioning it from New to Running:
// a task is only eligible for selection once queued.
func (rq *Runqueue) Add(t *Task) {
	if t.State == StateNew {
		t.State = StateRunning
	}
	rq.Tasks = append(rq.Tasks, t)
}

// Remove drops a task from the runqueue, clearing Curr if it pointed at it.
func (rq *Runqueue) Remove(t *Task) {
	for i, cand := range rq.Tasks {
		if cand == t {
			rq.Tasks = append(rq.Tasks[:i], rq.Tasks[i+1:]...)
			break
		}
	}
	if rq.Curr == t {
		rq.Curr = nil
	}
}

// Runnable returns every task currently eligible for selection, in
// runqueue order.
func (rq *Runqueue) Runnable() []*Task {
	out := make([]*Task, 0, len(rq.Tasks))
	for _, t := range rq.Tasks {
		if t.Runnable() {
			out = append(out, t)
		}
	}
	return out
}
