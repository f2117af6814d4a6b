//go:build lilygo_t_call_a7670_v1_0

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TCallA7670V10

func init() { tag(buildTagBoard) }
