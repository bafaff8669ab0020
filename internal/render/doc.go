// Package render turns bob positions into drawable shapes.
//
// A [Scene] places the pivot at the centre of a fixed-size canvas. Every
// frame is the same four shapes (two arms and two bobs); renderers either
// write a full SVG document or push the shape attributes to a view that
// already holds the elements.
package render
