// Package main hosts the booki CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into catalog
// store operations, editor round trips, and Open Library lookups. It
// centralizes configuration resolution and logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: catalog semantics belong in internal/catalog, and
// new functionality should land there first before a command surfaces it.
package main
