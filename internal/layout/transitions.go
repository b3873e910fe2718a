// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layout

import "time"

// TransitionKind classifies how a tile changes between two layouts.
type TransitionKind int

const (
	// Enter is a tile that was not present before.
	Enter TransitionKind = iota
	// Update is a tile whose position or size changed.
	Update
	// Leave is a tile that is no longer present.
	Leave
)

func (k TransitionKind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Update:
		return "update"
	case Leave:
		return "leave"
	default:
		return "unknown"
	}
}

// Spring holds the physical parameters of the tile animation.
type Spring struct {
	Mass     float64
	Tension  float64
	Friction float64
}

// Animation configures transition timing.
type Animation struct {
	Spring Spring

	// Trail is the stagger applied per list index so that tiles do not all
	// appear at once.
	Trail time.Duration
}

// DefaultAnimation matches the gallery's documented tuning.
var DefaultAnimation = Animation{
	Spring: Spring{Mass: 5, Tension: 500, Friction: 100},
	Trail:  25 * time.Millisecond,
}

// Transition describes one tile animation.
type Transition struct {
	Key   string
	Kind  TransitionKind
	From  Frame
	To    Frame
	Delay time.Duration
}

// Diff matches placements of prev and next by key. Entering tiles animate
// from their target frame at zero opacity, leaving tiles collapse height and
// opacity to zero, and tiles whose geometry changed animate position and size
// only. Unchanged tiles produce no transition. The delay of a transition is
// its list index (in next for enter/update, in prev for leave) times
// anim.Trail.
//
// Output order: leaves in prev order, then enters and updates in next order.
func Diff[T any](prev, next []Placement[T], anim Animation) []Transition {
	before := make(map[string]Placement[T], len(prev))
	for _, p := range prev {
		before[p.Key] = p
	}
	after := make(map[string]struct{}, len(next))
	for _, p := range next {
		after[p.Key] = struct{}{}
	}

	var out []Transition

	for _, p := range prev {
		if _, ok := after[p.Key]; ok {
			continue
		}
		to := p.Frame()
		to.Height = 0
		to.Opacity = 0
		out = append(out, Transition{
			Key:   p.Key,
			Kind:  Leave,
			From:  p.Frame(),
			To:    to,
			Delay: time.Duration(p.Index) * anim.Trail,
		})
	}

	for _, p := range next {
		delay := time.Duration(p.Index) * anim.Trail
		old, existed := before[p.Key]
		if !existed {
			from := p.Frame()
			from.Opacity = 0
			out = append(out, Transition{Key: p.Key, Kind: Enter, From: from, To: p.Frame(), Delay: delay})
			continue
		}
		if old.Frame() == p.Frame() {
			continue
		}
		out = append(out, Transition{Key: p.Key, Kind: Update, From: old.Frame(), To: p.Frame(), Delay: delay})
	}

	return out
}

// MaxDelay returns the largest delay among transitions.
func MaxDelay(ts []Transition) time.Duration {
	var d time.Duration
	for _, t := range ts {
		if t.Delay > d {
			d = t.Delay
		}
	}
	return d
}
