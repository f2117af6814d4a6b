//go:build lilygo_t_call_a7670_v1_1

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TCallA7670V11

func init() { tag(buildTagBoard) }
