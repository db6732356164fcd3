// Package statsview optionally serves runtime statistics over HTTP while a
// frontend runs. It is built only with the statsview build tag; otherwise
// Launch reports that it is unavailable.
//
// After launch, graphs are served at
//
//	localhost:12600/debug/statsview
//
// and the standard pprof handlers at
//
//	localhost:12600/debug/pprof/
package statsview
