// Package sim provides the core simulation engine for the OPTimal (Belady)
// page replacement policy.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - frames.go: FrameSet, the ordered set of resident pages with a fixed capacity
//   - victim.go: SelectVictim, the farthest-next-use eviction search
//   - simulator.go: Run, the per-symbol state machine (hit / fill / evict)
//
// # Architecture
//
// The sim package defines the page types and the engine; supporting code lives
// in sub-packages:
//   - sim/workload/: reference string generation, parsing and YAML specs
//   - sim/trace/: per-step records, summaries and CSV/YAML export
//
// sim/trace has no dependency on sim, so trace consumers (renderers, exporters)
// never need to import the engine.
//
// # Determinism
//
// The engine itself never draws random numbers. Randomness is confined to
// reference generation, which takes an injected *rand.Rand obtained from
// PartitionedRNG. Two runs over the same Sequence and capacity MUST produce
// identical Results.
package sim
