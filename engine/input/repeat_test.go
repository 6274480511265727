package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeatFire(t *testing.T) {
	r := Repeat{Delay: 30, Interval: 3}

	var fired []int
	for tick := 0; tick <= 40; tick++ {
		if r.Fire(tick) {
			fired = append(fired, tick)
		}
	}
	assert.Equal(t, []int{1, 30, 33, 36, 39}, fired)
}

func TestRepeatDisabled(t *testing.T) {
	r := Repeat{Delay: 5}
	assert.True(t, r.Fire(1))
	assert.False(t, r.Fire(5))
	assert.False(t, r.Fire(0))
}
