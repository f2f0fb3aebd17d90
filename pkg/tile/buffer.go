package tile

// Buffer is a non-owning 2D view over a contiguous, externally allocated
// row-major array. It replaces the raw 2D pointer arrays (chan_t**) the
// reference implementation used: one contiguous allocation plus strided
// indexing, as called for by the rewrite notes in spec.md §9.
type Buffer[T any] struct {
	data   []T
	width  int
	height int
	stride int
}

// NewBuffer wraps data as a width×height view. data must have length
// >= height*stride.
func NewBuffer[T any](data []T, width, height, stride int) Buffer[T] {
	return Buffer[T]{data: data, width: width, height: height, stride: stride}
}

func (b Buffer[T]) Width() int  { return b.width }
func (b Buffer[T]) Height() int { return b.height }

// At returns the value at (x, y).
func (b Buffer[T]) At(x, y int) T {
	return b.data[y*b.stride+x]
}

// Set writes the value at (x, y).
func (b Buffer[T]) Set(x, y int, v T) {
	b.data[y*b.stride+x] = v
}

// Row returns the backing slice for row y, width elements wide.
func (b Buffer[T]) Row(y int) []T {
	off := y * b.stride
	return b.data[off : off+b.width]
}

// Ref is a cursor over a Buffer supporting relative movement, the way the
// reference implementation's PixelRef lets the kernels and the window
// filler walk a tile buffer without recomputing offsets on every step.
type Ref[T any] struct {
	buf  *Buffer[T]
	x, y int
}

// Cursor returns a Ref positioned at (x, y) within buf.
func Cursor[T any](buf *Buffer[T], x, y int) Ref[T] {
	return Ref[T]{buf: buf, x: x, y: y}
}

func (r *Ref[T]) MoveX(n int) { r.x += n }
func (r *Ref[T]) MoveY(n int) { r.y += n }

func (r Ref[T]) Read() T {
	return r.buf.At(r.x, r.y)
}

func (r Ref[T]) Write(v T) {
	r.buf.Set(r.x, r.y, v)
}
