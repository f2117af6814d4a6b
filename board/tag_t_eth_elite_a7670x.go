//go:build lilygo_t_eth_elite_a7670x

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TETHEliteA7670X

func init() { tag(buildTagBoard) }
