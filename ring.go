package main

import "github.com/jask/tricolor/internal/colorval"

// connectRing wires the ordered panels into a bidirectional ring: each
// panel's change emission drives Apply on its successor and predecessor,
// with wrap-around between the last and first panels. Every panel also
// reports to the central onChange handler, which tracks the last known
// color for the swatch and does not propagate further.
//
// Apply suppresses the receiving panel's own emissions, so a single edit
// settles the whole ring exactly once.
func connectRing(panels []*panel, onChange func(colorval.Color)) {
	for i := 0; i < len(panels)-1; i++ {
		next, prev := panels[i+1], panels[i]
		prev.Subscribe(next.Apply)
		next.Subscribe(prev.Apply)
	}
	if n := len(panels); n >= 2 {
		panels[n-1].Subscribe(panels[0].Apply)
		panels[0].Subscribe(panels[n-1].Apply)
	}
	if onChange != nil {
		for _, p := range panels {
			p.Subscribe(onChange)
		}
	}
}
