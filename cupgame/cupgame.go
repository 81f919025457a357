package cupgame

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLabels reads a string of digits as cup labels in clockwise order.
// Surrounding whitespace is ignored.
func ParseLabels(input string) ([]int, error) {
	s := strings.TrimSpace(input)
	labels := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidLabel, s[i], i)
		}
		labels = append(labels, int(s[i]-'0'))
	}
	return labels, nil
}

// NewCircle builds a circle from labels, which must be a permutation of
// 1..len(labels). When total exceeds len(labels) the circle continues with
// len(labels)+1..total in order. The first label is the current cup.
func NewCircle(labels []int, total int) (*Circle, error) {
	n := len(labels)
	if total < n {
		total = n
	}
	if total < MinCups {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooFewCups, total, MinCups)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: no starting labels", ErrInvalidLabel)
	}
	seen := make([]bool, n+1)
	for _, l := range labels {
		if l < 1 || l > n || seen[l] {
			return nil, fmt.Errorf("%w: %d in %v", ErrInvalidLabel, l, labels)
		}
		seen[l] = true
	}

	c := &Circle{next: make([]int32, total+1), current: int32(labels[0])}
	prev := c.current
	link := func(l int32) {
		c.next[prev] = l
		prev = l
	}
	for _, l := range labels[1:] {
		link(int32(l))
	}
	for l := n + 1; l <= total; l++ {
		link(int32(l))
	}
	link(c.current)
	return c, nil
}

// Len returns the number of cups.
func (c *Circle) Len() int { return len(c.next) - 1 }

// Current returns the label of the current cup.
func (c *Circle) Current() int { return int(c.current) }

// Play performs moves moves.
func (c *Circle) Play(moves int) {
	top := int32(c.Len())
	for ; moves > 0; moves-- {
		cur := c.current
		p1 := c.next[cur]
		p2 := c.next[p1]
		p3 := c.next[p2]

		dest := cur
		for {
			dest--
			if dest == 0 {
				dest = top
			}
			if dest != p1 && dest != p2 && dest != p3 {
				break
			}
		}

		c.next[cur] = c.next[p3]
		c.next[p3] = c.next[dest]
		c.next[dest] = p1
		c.current = c.next[cur]
	}
}

// Next returns the label clockwise of label, or 0 if label is not on the
// circle.
func (c *Circle) Next(label int) int {
	if label < 1 || label > c.Len() {
		return 0
	}
	return int(c.next[label])
}

// Order returns every label clockwise starting at from, or nil if from is
// not on the circle.
func (c *Circle) Order(from int) []int {
	if from < 1 || from > c.Len() {
		return nil
	}
	out := make([]int, 0, c.Len())
	for l := int32(from); ; {
		out = append(out, int(l))
		if l = c.next[l]; l == int32(from) {
			break
		}
	}
	return out
}

// LabelsAfter concatenates the labels clockwise of label, excluding label.
func (c *Circle) LabelsAfter(label int) string {
	order := c.Order(label)
	if len(order) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range order[1:] {
		b.WriteString(strconv.Itoa(l))
	}
	return b.String()
}
