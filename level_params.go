package lzhash

// compressLevelParams holds the match-finder tuning for one DEFLATE compression level.
type compressLevelParams struct {
	goodLength int // reduce lazy search above this match length
	maxLazy    int // do not perform lazy search above this match length
	niceLength int // quit search above this match length
	maxChain   int // max hash chain entries walked per position
}

// DefaultLevel selects level 6.
const DefaultLevel = -1

const defaultLevelValue = 6

// fixedLevels defines parameters for compression levels 0–9 (zlib table).
var fixedLevels = [10]compressLevelParams{
	{0, 0, 0, 0},
	{4, 4, 8, 4},
	{4, 5, 16, 8},
	{4, 6, 32, 32},
	{4, 4, 16, 16},
	{8, 16, 32, 32},
	{8, 16, 128, 128},
	{8, 32, 128, 256},
	{32, 128, MaxMatch, 1024},
	{32, MaxMatch, MaxMatch, 4096},
}

// clampLevel maps DefaultLevel to 6 and clamps everything else into 0..9.
func clampLevel(level int) int {
	if level == DefaultLevel {
		return defaultLevelValue
	}

	return min(max(level, 0), len(fixedLevels)-1)
}

// MaxChain returns the hash chain walk depth configured for level.
func MaxChain(level int) int {
	return fixedLevels[clampLevel(level)].maxChain
}

// VariantForMaxChain picks the hash variant for a given chain depth: Roll above
// 1024 entries, otherwise CRC32 when the CPU runs it in hardware, otherwise Standard.
func VariantForMaxChain(maxChain int) Variant {
	switch {
	case maxChain > 1024:
		return Roll
	case CRC32Supported() && crc32cHardware:
		return CRC32
	default:
		return Standard
	}
}

// VariantForLevel is VariantForMaxChain applied to the level's chain depth.
func VariantForLevel(level int) Variant {
	return VariantForMaxChain(MaxChain(level))
}
