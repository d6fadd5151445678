package lite

// regionStack is a non-empty stack of absolute clip rectangles. The top is
// the active subregion; every drawing coordinate is relative to it.
type regionStack []Rect

func newRegionStack(root Rect) regionStack {
	return regionStack{root}
}

// top returns the active subregion.
func (s regionStack) top() Rect {
	return s[len(s)-1]
}

// push clamps r to the active subregion's size and pushes it, translated
// by the active subregion's offset.
func (s *regionStack) push(r Rect) {
	parent := s.top()
	r = r.Clamp(RectAt(Offset{}, parent.Size()))
	*s = append(*s, r.Translate(parent.Offset()))
}

// pop removes the active subregion unless it is the root.
func (s *regionStack) pop() {
	if len(*s) == 1 {
		return
	}
	*s = (*s)[:len(*s)-1]
}

// locate translates (x, y) into absolute coordinates and reports whether
// the point lies inside the active subregion.
func (s regionStack) locate(x, y int) (Offset, bool) {
	r := s.top()
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return Offset{}, false
	}
	return Offset{X: x + r.X, Y: y + r.Y}, true
}
