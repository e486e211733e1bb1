package engine

import "slices"

// TimerHandle identifies a timer registered with a TimerManager. Zero is invalid.
type TimerHandle uint64

func (h TimerHandle) IsValid() bool {
	return h != 0
}

// Invalidate resets the handle without touching the manager.
func (h *TimerHandle) Invalidate() {
	*h = 0
}

type timer struct {
	interval  float32
	remaining float32
	loop      bool
	callback  func()
}

// TimerManager runs delayed and repeating callbacks on the scene's update.
// A looping timer fires at most once per Tick, so callbacks never overlap.
type TimerManager struct {
	timers map[TimerHandle]*timer
	next   TimerHandle
}

func NewTimerManager() *TimerManager {
	return &TimerManager{timers: make(map[TimerHandle]*timer)}
}

// SetTimer schedules callback after interval seconds, repeating if loop is set.
func (m *TimerManager) SetTimer(interval float32, loop bool, callback func()) TimerHandle {
	if callback == nil {
		return 0
	}
	if interval <= 0 {
		interval = 0.0001
	}
	m.next++
	m.timers[m.next] = &timer{
		interval:  interval,
		remaining: interval,
		loop:      loop,
		callback:  callback,
	}
	return m.next
}

// ClearTimer cancels the timer and invalidates the handle.
func (m *TimerManager) ClearTimer(h *TimerHandle) {
	if h == nil {
		return
	}
	delete(m.timers, *h)
	h.Invalidate()
}

func (m *TimerManager) IsTimerActive(h TimerHandle) bool {
	_, ok := m.timers[h]
	return ok
}

func (m *TimerManager) Count() int {
	return len(m.timers)
}

func (m *TimerManager) Tick(deltaTime float32) {
	due := make([]TimerHandle, 0)
	for h, t := range m.timers {
		t.remaining -= deltaTime
		if t.remaining <= 0 {
			due = append(due, h)
		}
	}
	// Fire in registration order
	slices.Sort(due)
	for _, h := range due {
		t, ok := m.timers[h]
		if !ok {
			continue // cleared by an earlier callback
		}
		if t.loop {
			t.remaining += t.interval
			if t.remaining <= 0 {
				t.remaining = t.interval
			}
		} else {
			delete(m.timers, h)
		}
		t.callback()
	}
}
