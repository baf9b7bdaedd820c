package keg

// Hierarchy is an ordered Group -> Classification -> KO -> Description
// accumulator. Every level keeps first-seen order. A Hierarchy is built by
// a single Parse call and is not safe for concurrent use.
type Hierarchy struct {
	policy  DedupPolicy
	groups  []*group
	byLabel map[string]*group
	kos     map[string]int // number of classifications currently holding each KO

	cur      *group
	curClass *classification
}

type group struct {
	label   string
	classes []*classification
	byLabel map[string]*classification
}

type classification struct {
	label string
	kos   []string
	desc  map[string]string
}

func newHierarchy(policy DedupPolicy) *Hierarchy {
	return &Hierarchy{
		policy:  policy,
		byLabel: make(map[string]*group),
		kos:     make(map[string]int),
	}
}

// openGroup makes label the current group. Reopening an existing label
// empties it but keeps its original position.
func (h *Hierarchy) openGroup(label string) {
	g, ok := h.byLabel[label]
	if ok {
		for _, c := range g.classes {
			h.forget(c)
		}
		g.classes = nil
		g.byLabel = make(map[string]*classification)
	} else {
		g = &group{label: label, byLabel: make(map[string]*classification)}
		h.groups = append(h.groups, g)
		h.byLabel[label] = g
	}
	h.cur = g
	h.curClass = nil
}

// openClass makes label the current classification under the current
// group, with the same reopen semantics as openGroup.
func (h *Hierarchy) openClass(label string) error {
	if h.cur == nil {
		return ErrMissingContext
	}
	c, ok := h.cur.byLabel[label]
	if ok {
		h.forget(c)
		c.kos = nil
		c.desc = make(map[string]string)
	} else {
		c = &classification{label: label, desc: make(map[string]string)}
		h.cur.classes = append(h.cur.classes, c)
		h.cur.byLabel[label] = c
	}
	h.curClass = c
	return nil
}

// addKO records ko under the current classification, subject to the
// dedup policy. It reports whether the record was kept.
func (h *Hierarchy) addKO(ko, desc string) (bool, error) {
	c := h.curClass
	if c == nil {
		return false, ErrMissingContext
	}
	_, inClass := c.desc[ko]
	switch h.policy {
	case DedupGlobal:
		if h.kos[ko] > 0 {
			return false, nil
		}
	case DedupScoped:
		if inClass {
			return false, nil
		}
	case DedupNone:
		if inClass {
			c.desc[ko] = desc
			return true, nil
		}
	}
	c.kos = append(c.kos, ko)
	c.desc[ko] = desc
	h.kos[ko]++
	return true, nil
}

func (h *Hierarchy) forget(c *classification) {
	for _, ko := range c.kos {
		if h.kos[ko]--; h.kos[ko] <= 0 {
			delete(h.kos, ko)
		}
	}
}

// Len returns the number of KO records held.
func (h *Hierarchy) Len() int {
	n := 0
	for _, g := range h.groups {
		for _, c := range g.classes {
			n += len(c.kos)
		}
	}
	return n
}

// Flatten returns one Entry per KO record in first-seen order.
func (h *Hierarchy) Flatten() []Entry {
	entries := make([]Entry, 0, h.Len())
	for _, g := range h.groups {
		for _, c := range g.classes {
			for _, ko := range c.kos {
				entries = append(entries, Entry{
					Group:          g.label,
					Classification: c.label,
					KO:             ko,
					Description:    c.desc[ko],
				})
			}
		}
	}
	return entries
}

// Rows flattens the hierarchy and merges it into grouped rows.
func (h *Hierarchy) Rows() []GroupedRow {
	return Group(h.Flatten())
}
