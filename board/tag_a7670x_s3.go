//go:build lilygo_a7670x_s3

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = A7670XS3

func init() { tag(buildTagBoard) }
