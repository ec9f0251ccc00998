package canvas

// Transform is an axis-aligned affine map: x' = x*SX + TX, y' = y*SY + TY.
// Rotation is never needed, so the full 2x3 matrix is not kept.
type Transform struct {
	SX, SY float64
	TX, TY float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Transform{SX: 1, SY: 1}

// Apply maps a point.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.SX + t.TX, y*t.SY + t.TY
}

// ApplyRect maps a rectangle and normalizes it to positive extents.
// flipX and flipY report whether the content ends up mirrored.
func (t Transform) ApplyRect(x, y, w, h float64) (rx, ry, rw, rh float64, flipX, flipY bool) {
	x0, y0 := t.Apply(x, y)
	x1, y1 := t.Apply(x+w, y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
		flipX = true
	}
	if y1 < y0 {
		y0, y1 = y1, y0
		flipY = true
	}
	return x0, y0, x1 - x0, y1 - y0, flipX, flipY
}

// TransformStack implements the Save/Restore/Translate/Scale part of Canvas.
// Embed it in a canvas implementation.
type TransformStack struct {
	current Transform
	saved   []Transform
	inited  bool
}

// Current returns the active transform.
func (s *TransformStack) Current() Transform {
	if !s.inited {
		return Identity
	}
	return s.current
}

// ResetTransform drops saved states and returns to identity.
func (s *TransformStack) ResetTransform() {
	s.current = Identity
	s.saved = s.saved[:0]
	s.inited = true
}

// Save pushes the active transform.
func (s *TransformStack) Save() {
	s.saved = append(s.saved, s.Current())
}

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (s *TransformStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.inited = true
}

// Translate moves the origin, in the current coordinate space.
func (s *TransformStack) Translate(dx, dy float64) {
	t := s.Current()
	t.TX += dx * t.SX
	t.TY += dy * t.SY
	s.current = t
	s.inited = true
}

// Scale scales subsequent drawing. Negative factors mirror.
func (s *TransformStack) Scale(sx, sy float64) {
	t := s.Current()
	t.SX *= sx
	t.SY *= sy
	s.current = t
	s.inited = true
}
