package easel

// Line returns a line segment from (0,0) to (x,y).
func Line(x, y float64) *Path {
	if Equal(x, 0.0) && Equal(y, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.LineTo(x, y)
	return p
}

// Arc returns a circular arc with radius r, from angle theta0 to theta1 in degrees. If theta0 < theta1, the arc runs in a CCW direction.
func Arc(r, theta0, theta1 float64) *Path {
	return EllipticalArc(r, r, 0.0, theta0, theta1)
}

// EllipticalArc returns an elliptical arc with radii rx and ry, with rot the counter clockwise rotation in degrees, from angle theta0 to theta1 in degrees. If theta0 < theta1, the arc runs in a CCW direction.
func EllipticalArc(rx, ry, rot, theta0, theta1 float64) *Path {
	p := &Path{}
	p.Arc(rx, ry, rot, theta0, theta1)
	return p
}

// Rectangle returns a rectangle of width w and height h.
func Rectangle(w, h float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.LineTo(w, 0.0)
	p.LineTo(w, h)
	p.LineTo(0.0, h)
	p.Close()
	return p
}

// Circle returns a circle of radius r.
func Circle(r float64) *Path {
	return Ellipse(r, r)
}

// Ellipse returns an ellipse of radii rx and ry.
func Ellipse(rx, ry float64) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(rx, 0.0)
	p.ArcTo(rx, ry, 0.0, false, true, -rx, 0.0)
	p.ArcTo(rx, ry, 0.0, false, true, rx, 0.0)
	p.Close()
	return p
}
