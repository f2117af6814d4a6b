//go:build lilygo_t_a7670

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TA7670

func init() { tag(buildTagBoard) }
