// Package state persists folder and file transfer progress in SQLite.
//
// The Store is the sole source of truth for resumption: the transfer engine
// re-reads it on every run to decide what work remains. Every write is a
// single durable statement so an interrupted process never leaves a record
// half-updated. Path keys are normalized through one function before every
// read and write so the same folder or file is never represented twice.
package state
