package model

// Package model defines domain data structures used across the app: the input
// pair, image slots, generation records, and controller state. Structures are
// plain values so the UI and CLI can render them without extra mapping.
