package world

// Shape is a named piece geometry. Its mask is private so that the catalog
// can't be changed by the pieces that are created from it. A piece gets its
// own copy of the mask when it spawns and rotates that copy.
type Shape struct {
	Name string
	mask Mat
}

// Mask returns a copy of the shape's mask.
func (s Shape) Mask() Mat {
	return s.mask.Clone()
}

func newShape(name string, rows [][]int64) Shape {
	return Shape{Name: name, mask: NewMatFromRows(rows)}
}

var (
	Square = newShape("Square", [][]int64{
		{1, 1},
		{1, 1}})
	L = newShape("L", [][]int64{
		{1, 0},
		{1, 0},
		{1, 1}})
	Stick = newShape("Stick", [][]int64{
		{1},
		{1},
		{1}})
	Z = newShape("Z", [][]int64{
		{1, 1, 0},
		{0, 1, 1}})
	S = newShape("S", [][]int64{
		{0, 1, 1},
		{1, 1, 0}})
	T = newShape("T", [][]int64{
		{1, 1, 1},
		{0, 1, 0}})
)

// Shapes is the catalog a new piece is chosen from, uniformly.
var Shapes = []Shape{Square, L, Stick, Z, S, T}

func ShapeByName(name string) (Shape, bool) {
	for _, s := range Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}
