// Package web serves the pendulum page and streams its animation.
//
// GET / renders the page shell with the pendulum at its initial position.
// The page then opens GET /ws; every connection is one mounted view with
// its own integrator and driver, started when the socket opens and
// stopped when it closes. Viewers share nothing.
package web
