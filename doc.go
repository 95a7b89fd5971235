// Package lvsum is a small toolkit for subset-sum problems over
// non-negative integers: "which of these values reach T, or get as close to
// T as possible without going over?"
//
// 🚀 What is inside?
//
//	A pure-Go library plus a CLI that bring together:
//		• largestsum: deficit-table dynamic program with early exit,
//		  best-row fallback and two reconstruction strategies
//		• bitwise: ripple-carry integer addition from bit operations
//		• cmd/lvsum: cobra CLI over both, YAML config and problem files
//
// ✨ Why lvsum?
//
//   - Exact first – an exact subset is returned as soon as one row reaches T
//   - Honest limits – oversized tables fail with ErrTableTooLarge, never OOM
//   - Deterministic – same input, same subset, same discovery order
//   - No hidden state – every call owns its table and frees it on return
//
// Packages:
//
//	largestsum/        - Solve / Run, Options, Recurrence, BacktrackMode
//	bitwise/           - Add(a, b int32) int32
//	cmd/lvsum/         - `lvsum solve`, `lvsum add`, `lvsum version`
//	internal/config/   - lvsum.yaml + LVSUM_* environment overrides
//	internal/problem/  - YAML problem files
//	internal/logging/  - zap logger construction
//
// Quick example:
//
//	subset, sum, err := largestsum.Solve(11, []uint64{1, 2, 3, 4, 5, 6, 7}, nil)
//	// subset = [5 3 2 1], sum = 11
//
//	go install github.com/katalvlaran/lvsum/cmd/lvsum@latest
package lvsum
