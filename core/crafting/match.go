package crafting

// Claim is the number of units an ingredient takes from one pickup.
type Claim struct {
	Pickup Pickup
	Count  int
}

// Plan lists the claims of a successful match in the order they were made.
type Plan []Claim

// Units returns the total number of claimed units.
func (p Plan) Units() int {
	n := 0
	for _, c := range p {
		n += c.Count
	}
	return n
}

// Consume shrinks every claimed pickup and discards the ones left empty.
func (p Plan) Consume() {
	for _, c := range p {
		if !c.Pickup.Alive() {
			continue
		}
		left := c.Pickup.Stack().Count - c.Count
		if left <= 0 {
			c.Pickup.Discard()
			continue
		}
		c.Pickup.SetCount(left)
	}
}

// Match decides whether the candidates satisfy every ingredient at once.
//
// Every live candidate is given to at most one ingredient, so units are never
// counted twice. The search backtracks over the eligible ingredients of each
// candidate, so the outcome does not depend on the order ingredients are
// listed in. Dead pickups are skipped.
//
// The plan lists claims ingredient by ingredient, each in candidate order.
func Match(inputs []Ingredient, candidates []Pickup) (Plan, bool) {
	if len(inputs) == 0 {
		return nil, false
	}

	a := assignment{
		inputs: inputs,
		stacks: make([]Stack, len(candidates)),
		need:   make([]int, len(inputs)),
		owner:  make([]int, len(candidates)),
		take:   make([]int, len(candidates)),
	}
	for i, in := range inputs {
		a.need[i] = in.Required()
	}
	for j, c := range candidates {
		a.owner[j] = -1
		if c != nil && c.Alive() {
			a.stacks[j] = c.Stack()
		}
	}
	if !a.solve(0) {
		return nil, false
	}

	var plan Plan
	for i := range inputs {
		for j, c := range candidates {
			if a.owner[j] == i {
				plan = append(plan, Claim{Pickup: c, Count: a.take[j]})
			}
		}
	}
	return plan, true
}

// assignment is the search state of Match. Dead candidates hold an empty stack.
type assignment struct {
	inputs []Ingredient
	stacks []Stack
	need   []int
	owner  []int
	take   []int
}

func (a *assignment) done() bool {
	for _, n := range a.need {
		if n > 0 {
			return false
		}
	}
	return true
}

// reachable reports whether every unmet ingredient still has an eligible
// candidate at or after index j.
func (a *assignment) reachable(j int) bool {
	for i, in := range a.inputs {
		if a.need[i] == 0 {
			continue
		}
		found := false
		for _, s := range a.stacks[j:] {
			if in.Take(s, a.need[i]) > 0 {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (a *assignment) solve(j int) bool {
	if a.done() {
		return true
	}
	if j == len(a.stacks) || !a.reachable(j) {
		return false
	}

	for i, in := range a.inputs {
		t := in.Take(a.stacks[j], a.need[i])
		if t == 0 {
			continue
		}
		a.need[i] -= t
		a.owner[j], a.take[j] = i, t
		if a.solve(j + 1) {
			return true
		}
		a.need[i] += t
		a.owner[j], a.take[j] = -1, 0
	}
	return a.solve(j + 1)
}
