// Package types defines the shared vocabulary of confmend: the filesystem
// abstraction, file-variant pairs, resolution modes and session results.
//
// Keeping these in a leaf package lets the engine, discovery, ui and
// command layers share types without import cycles.
package types
