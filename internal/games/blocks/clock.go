package blocks

// frameClock converts fixed frames into whole milliseconds. The sub-ms
// remainder is carried, so rate frames always add up to exactly 1000ms.
type frameClock struct {
	rate  int
	carry int // in 1/rate ms
}

func newFrameClock(rate int) frameClock {
	if rate <= 0 {
		rate = 60
	}
	return frameClock{rate: rate}
}

// advance returns the milliseconds elapsed during one frame.
func (c *frameClock) advance() int {
	c.carry += 1000
	ms := c.carry / c.rate
	c.carry %= c.rate
	return ms
}

func (c *frameClock) reset() {
	c.carry = 0
}
