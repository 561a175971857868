package renderer

// RowSeed derives the random seed of one image row from the scene seed.
// Rows get independent, well mixed streams, and the result depends only on
// (sceneSeed, row), so renders are reproducible regardless of scheduling.
func RowSeed(sceneSeed int64, row int) int64 {
	// SplitMix64 finalizer over the seed advanced by row+1 golden-ratio steps
	z := uint64(sceneSeed) + uint64(row+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
