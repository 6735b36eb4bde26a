package plan

import "math"

// Matrix is the sparse density accumulator steering later placement passes
// away from saturated regions. A bucket's count is the number of mountain
// footprints overlapping it. Counts only ever grow; features are never
// removed from the landscape.
type Matrix struct {
	bucketWidth float64
	counts      map[int]int
}

func NewMatrix(bucketWidth float64) *Matrix {
	if bucketWidth <= 0 {
		bucketWidth = 1
	}
	return &Matrix{
		bucketWidth: bucketWidth,
		counts:      make(map[int]int),
	}
}

func (m *Matrix) bucketOf(x float64) int {
	return int(math.Floor(x / m.bucketWidth))
}

// BucketWidth returns the discretization step.
func (m *Matrix) BucketWidth() float64 {
	return m.bucketWidth
}

// BucketCenter returns the x coordinate at the middle of bucket b.
func (m *Matrix) BucketCenter(b int) float64 {
	return (float64(b) + 0.5) * m.bucketWidth
}

// Mark increments every bucket overlapped by a footprint of the given width
// centered at x.
func (m *Matrix) Mark(x, width float64) {
	half := width / 2
	lo := m.bucketOf(x - half)
	hi := m.bucketOf(x + half)
	for b := lo; b <= hi; b++ {
		m.counts[b]++
	}
}

// Count reports the density at x.
func (m *Matrix) Count(x float64) int {
	return m.counts[m.bucketOf(x)]
}

// CountBucket reports the density of bucket b.
func (m *Matrix) CountBucket(b int) int {
	return m.counts[b]
}

// Marked returns the number of buckets with a non-zero count.
func (m *Matrix) Marked() int {
	return len(m.counts)
}
