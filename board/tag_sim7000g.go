//go:build lilygo_sim7000g

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = SIM7000G

func init() { tag(buildTagBoard) }
