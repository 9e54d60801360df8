// Package rc is the vector backend contract: a compile-time-selected
// fixed operation repertoire over a byte vector of width VSize, the
// machinery every word/SIMD-shaped kernel in this module is written
// against.
//
// Exactly one backend file compiles for a given GOARCH, selected by
// build tag the way the upstream C library selects one rc_vec_*.h
// header per target ISA: backend_generic.go (VSize=8, the portable
// fallback, built for every GOARCH without a dedicated file) and
// backend_amd64.go / backend_arm64.go (VSize=16, modeling the cost
// profile of SSE/NEON). Each backend file sets only VSize, the hint
// flags and BackendName; the operations themselves live in vec.go,
// shared by all backends, as pure Go arithmetic -- there is no
// assembly or unsafe reinterpretation here, see the repository's
// DESIGN.md for why. Higher layers never branch on which backend is
// active; they call the package-level functions and let the build tag
// pick the implementation, so there is no virtual dispatch on the hot
// path.
//
// All operations are total: no backend function panics or returns an
// error. Overflow behaviour is spelled out per operation, matching the
// upstream contract that backend primitives have no failure mode once
// their preconditions (operand lengths, alignment) hold -- those are
// the caller's responsibility, checked once in the API shell prologue,
// never inside a kernel.
package rc
