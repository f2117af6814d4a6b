package board

import (
	"sort"
	"strings"
)

// Build-time selection. Each board has a build tag named after its vendor
// macro in lower case (go build -tags lilygo_t_a7670). The tag files in
// this package register themselves here from init.

var tagged []ID

func tag(id ID) { tagged = append(tagged, id) }

// Tagged returns the boards enabled by build tags, sorted.
func Tagged() []ID {
	out := append([]ID(nil), tagged...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Selected resolves the build-tag selection. Building with no board tag,
// or with several, yields errcode.UnresolvedBoard.
func Selected() (Profile, error) { return Resolve(tagged...) }

// BuildTag returns the build tag that selects id.
func BuildTag(id ID) string {
	p, ok := profiles[id]
	if !ok {
		return ""
	}
	return strings.ToLower(p.Macro)
}
