// Package log provides the leveled logging facade used for optional
// diagnostics, chiefly the subgraph solver's debug tracing.
//
// What:
//
//   - Logger: a printf-style interface with Debug/Info/Warn/Error.
//   - DefaultLogger: standard-library backend with a level filter and
//     a "[quiver]" prefix (NewDefaultLogger for stderr, NewCustomLogger
//     for any io.Writer).
//   - GologLogger: github.com/kataras/golog backend (NewGologLogger).
//   - NoOpLogger: discards everything.
//   - A package-level default logger behind SetDefaultLogger /
//     GetDefaultLogger / SetLogLevel plus Debug/Info/Warn/Error
//     convenience functions.
//
// The graph container, traversal engine, and algorithms never log.
// Only components with an explicit diagnostic surface (csi.WithLogger)
// and user programs consume this package, so importers that want no
// logging pay nothing.
package log
