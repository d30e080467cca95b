// Package carve implements content-aware image resizing (seam carving).
//
// Given a decoded pixel buffer and a target width/height, the engine removes
// or duplicates contiguous, 8-connected, minimum-energy paths ("seams") until
// the buffer reaches the requested dimensions. Two optional binary masks bias
// the seam search: a protect mask that seams should avoid, and an object mask
// that seams are driven through until it is fully eliminated.
//
// The package is synchronous and single-threaded: a Session owns its image
// and mask buffers exclusively from construction to completion, and performs
// no I/O. Callers that need image decoding, file handling or a UI should sit
// on top of this package the way cmd/carve does.
package carve
