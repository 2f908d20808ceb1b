package visualate

type Point struct {
	X float64
	Y float64
}

func NumberPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// PointsOf zips xs and ys into points. The shortest slice gives the number of
// points.
func PointsOf(xs, ys []float64) []Point {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	list := make([]Point, n)
	for i := 0; i < n; i++ {
		list[i] = NumberPoint(xs[i], ys[i])
	}
	return list
}
