// Package waituntil only holds build metadata. The CLI itself lives in `cmd/wait-until`, its business logic in
// `internal/cli`.
package waituntil

// Version is the version of the CLI. It is overwritten at build time via `-ldflags "-X ..."`.
var Version = "development"
