//go:build lilygo_t_pcie_sim7000g

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TPCIeSIM7000G

func init() { tag(buildTagBoard) }
