package polygon

// Equal reports whether other is a *Polygon with the same vertex count and
// bit-identical circumradius. Any non-Polygon value compares unequal;
// equality never errors. Complexity: O(1).
func (p *Polygon) Equal(other any) bool {
	o, ok := other.(*Polygon)
	if !ok || o == nil {
		return false
	}

	return p.n == o.n && p.r == o.r
}

// Compare orders polygons by vertex count alone: −1 if p has fewer
// vertices than other, +1 if more, 0 if equal. The circumradius is
// irrelevant to ordering. Returns ErrUnsupportedComparison when other is
// not a *Polygon — ordering refuses foreign types rather than defaulting.
// Complexity: O(1).
func (p *Polygon) Compare(other any) (int, error) {
	o, ok := other.(*Polygon)
	if !ok || o == nil {
		return 0, ErrUnsupportedComparison
	}
	switch {
	case p.n < o.n:
		return -1, nil
	case p.n > o.n:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports whether p has fewer vertices than o.
// Complexity: O(1).
func (p *Polygon) Less(o *Polygon) bool { return p.n < o.n }

// Greater reports whether p has more vertices than o.
// Complexity: O(1).
func (p *Polygon) Greater(o *Polygon) bool { return p.n > o.n }
