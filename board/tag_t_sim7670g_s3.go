//go:build lilygo_t_sim7670g_s3

package board

// buildTagBoard is declared by every tag file, so two board tags fail to
// compile with "buildTagBoard redeclared".
const buildTagBoard = TSIM7670GS3

func init() { tag(buildTagBoard) }
