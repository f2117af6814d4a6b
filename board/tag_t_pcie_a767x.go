//go:build lilygo_t_pcie_a767x

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TPCIeA767X

func init() { tag(buildTagBoard) }
