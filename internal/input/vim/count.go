package vim

import (
	"math"
	"strconv"
)

// maxCount caps accumulated counts instead of overflowing.
const maxCount = math.MaxInt32

// Count accumulates a count prefix one digit at a time.
type Count struct {
	value  int
	digits string
}

// Reset clears the count.
func (c *Count) Reset() {
	c.value = 0
	c.digits = ""
}

// Active reports whether any digit has been accepted.
func (c *Count) Active() bool {
	return c.digits != ""
}

// Push adds a digit to the count and reports whether it was accepted.
// '0' cannot start a count (it's the line-start motion).
func (c *Count) Push(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	digit := int(r - '0')
	if !c.Active() && digit == 0 {
		return false
	}

	c.digits += string(r)
	if c.value > (maxCount-digit)/10 {
		c.value = maxCount
		return true
	}
	c.value = c.value*10 + digit
	return true
}

// Value returns the accumulated value, or 0 when no count was given.
func (c *Count) Value() int {
	return c.value
}

// Get returns the effective count (1 if no count was specified).
func (c *Count) Get() int {
	if c.value <= 0 {
		return 1
	}
	return c.value
}

// String returns the digits typed so far.
func (c *Count) String() string {
	return c.digits
}

// ParseCount parses a decimal count, returning 1 for empty or invalid input.
func ParseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// CombineCounts multiplies the count typed before an operator with the
// one typed after it, so "2d3w" deletes six words.
// Zero means "not given" and counts as 1.
func CombineCounts(count1, count2 int) int {
	if count1 <= 0 {
		count1 = 1
	}
	if count2 <= 0 {
		count2 = 1
	}
	if count1 > maxCount/count2 {
		return maxCount
	}
	return count1 * count2
}
