package trail

// Chain is the root-first sequence of boxes leading to Target.
type Chain struct {
	Target string `json:"target"`
	Boxes  []*Box `json:"boxes"`
}

// Len returns the number of boxes.
func (c *Chain) Len() int {
	return len(c.Boxes)
}

// Leaf returns the box of the target directory, or nil for an empty chain.
func (c *Chain) Leaf() *Box {
	if len(c.Boxes) == 0 {
		return nil
	}
	return c.Boxes[len(c.Boxes)-1]
}

// Selected returns the entry under the navigation cursor.
func (c *Chain) Selected() (Item, bool) {
	leaf := c.Leaf()
	if leaf == nil {
		return Item{}, false
	}
	idx := leaf.selectedIndex()
	if idx < 0 {
		return Item{}, false
	}
	return leaf.Items[idx], true
}

// MoveSelection moves the cursor delta entries within the leaf box, clamped
// to its bounds. It reports whether the cursor moved.
func (c *Chain) MoveSelection(delta int) bool {
	leaf := c.Leaf()
	if leaf == nil || len(leaf.Items) == 0 {
		return false
	}

	current := leaf.selectedIndex()
	if current < 0 {
		leaf.Items[0].State = StateSelected
		return true
	}

	next := min(max(current+delta, 0), len(leaf.Items)-1)
	if next == current {
		return false
	}

	leaf.Items[current].State = StateNormal
	leaf.Items[next].State = StateSelected
	return true
}

// selectDefault places the cursor in the leaf box unless an entry there is
// already marked. The entry at preferred wins over the first entry.
func (c *Chain) selectDefault(preferred string) {
	leaf := c.Leaf()
	if leaf == nil || len(leaf.Items) == 0 {
		return
	}

	for _, item := range leaf.Items {
		if item.State != StateNormal {
			return
		}
	}

	if preferred != "" {
		for i := range leaf.Items {
			if leaf.Items[i].Path == preferred {
				leaf.Items[i].State = StateSelected
				return
			}
		}
	}

	leaf.Items[0].State = StateSelected
}
