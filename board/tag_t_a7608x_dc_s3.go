//go:build lilygo_t_a7608x_dc_s3

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TA7608XDCS3

func init() { tag(buildTagBoard) }
