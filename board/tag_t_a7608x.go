//go:build lilygo_t_a7608x

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TA7608X

func init() { tag(buildTagBoard) }
