package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller is a dice.Roller that returns queued values in order.
// Roll and RollN both consume from the same queue. An exhausted queue
// returns an error so a test notices an unexpected extra roll.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
}

// NewScriptedRoller queues the given values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Push queues more values
func (r *ScriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Remaining returns the number of queued values
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Roll returns the next queued value. Values outside [1,size] are an error.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller: no values left for d%d", size)
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted roller: %d is not a face of d%d", v, size)
	}
	return v, nil
}

// RollN returns the next count queued values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
