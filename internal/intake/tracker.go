// Package intake holds the glasses counter and the history of previous
// days. The Tracker is the only mutable state; everything drawn is taken
// from an immutable Reading.
package intake

const DefaultGoal = 8

// DefaultHistory is the week shown before any history file is opened. The
// last slot is today and always mirrors the counter.
var DefaultHistory = []int{4, 0, 6, 4, 5, 8, 3}

type Tracker struct {
	count   int
	goal    int
	history []int
}

func NewTracker() *Tracker {
	return NewTrackerWith(DefaultGoal, DefaultHistory)
}

// NewTrackerWith builds a tracker for goal with a copy of history. A goal
// below one falls back to DefaultGoal.
func NewTrackerWith(goal int, history []int) *Tracker {
	if goal < 1 {
		goal = DefaultGoal
	}
	return &Tracker{goal: goal, history: append([]int(nil), history...)}
}

// Add counts one more glass. It reports false once the goal is reached.
func (t *Tracker) Add() bool {
	if t.count >= t.goal {
		return false
	}
	t.count++
	return true
}

// Remove takes back one glass. It reports false at zero.
func (t *Tracker) Remove() bool {
	if t.count <= 0 {
		return false
	}
	t.count--
	return true
}

func (t *Tracker) Count() int { return t.count }
func (t *Tracker) Goal() int  { return t.goal }

// SetHistory replaces the previous days. The counter is kept.
func (t *Tracker) SetHistory(history []int) {
	t.history = append(t.history[:0:0], history...)
}

func (t *Tracker) Reading() Reading {
	return Reading{Count: t.count, Goal: t.goal, History: append([]int(nil), t.history...)}
}

// Reading is the snapshot handed to the gauge and the graph for one frame.
type Reading struct {
	Count   int
	Goal    int
	History []int
}

// Series returns a fresh copy of the history with today replaced by the
// current count. An empty history yields just today.
func (r Reading) Series() []int {
	if len(r.History) == 0 {
		return []int{r.Count}
	}
	s := append([]int(nil), r.History...)
	s[len(s)-1] = r.Count
	return s
}
