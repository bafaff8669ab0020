// Package viz draws the pendulum in a terminal.
//
// [Model] is a Bubble Tea model fed with [FrameMsg] values by a
// [driver.Driver] through [Renderer]. It draws both arms and a fading
// trail of the second bob on a Braille [Canvas], next to a small energy
// chart. The view is passive: q or ctrl+c quits and nothing else is bound.
package viz
