// Package render drives frames: it paints a descriptor tree, samples frame
// times, paints the statistics overlay on top and submits the result to a
// [Target].
//
// A Target is the GPU or CPU backend. Submit failures are classified into
// typed errors ([ErrSurfaceLost], [ErrDeviceLost], [ErrOutOfMemory]),
// reported to the error handler and returned. The renderer never retries a
// frame; the caller decides whether to recreate resources.
package render
