package report

import "fmt"

// MaxDisplay is the largest value a counter can show
const MaxDisplay = 999

// Counter names shown on the status line
const (
	CounterActions = "actions"
	CounterScore   = "score"
	CounterTime    = "time"
)

// Counter is a three digit status counter. With a count down value the
// counter shows the remaining amount instead of the raw value.
type Counter struct {
	Name      string
	value     int
	countDown int
	enabled   bool
}

// NewCounter returns an enabled counter at zero
func NewCounter(name string) *Counter {
	return &Counter{Name: name, enabled: true}
}

// Value returns the raw value
func (c *Counter) Value() int {
	return c.value
}

// Set replaces the raw value
func (c *Counter) Set(v int) {
	c.value = v
}

// Incr adds one to the raw value
func (c *Counter) Incr() {
	c.value++
}

// Clear resets the raw value to zero
func (c *Counter) Clear() {
	c.value = 0
}

// SetCountDown makes the counter show limit - value; zero turns it off
func (c *Counter) SetCountDown(limit int) {
	c.countDown = limit
}

// SetEnabled shows or blanks the counter
func (c *Counter) SetEnabled(on bool) {
	c.enabled = on
}

// Enabled reports whether the counter is shown
func (c *Counter) Enabled() bool {
	return c.enabled
}

// DisplayValue returns the value to show, clamped to 0..MaxDisplay
func (c *Counter) DisplayValue() int {
	v := c.value
	if c.countDown > 0 {
		v = c.countDown - c.value
	}
	return min(max(v, 0), MaxDisplay)
}

// String renders the counter as three right aligned digits, blank when
// disabled
func (c *Counter) String() string {
	if !c.enabled {
		return "   "
	}
	return fmt.Sprintf("%3d", c.DisplayValue())
}
