package config

import (
	"sort"
	"strings"

	"github.com/golang/glog"

	"modemboard-go/board"
	"modemboard-go/errcode"
)

// Source says where a board selection came from.
type Source string

const (
	SourceBuildTag Source = "build tag"
	SourceFile     Source = "config file"
	SourceEnv      Source = "$" + EnvBoard
	SourceFlag     Source = "-board flag"
)

// Candidate is one board named by one source.
type Candidate struct {
	Source Source
	ID     board.ID
}

// Selection gathers every source that named a board.
type Selection struct {
	Candidates        []Candidate
	AllowIncompatible bool
}

// NewSelection collects candidates from build tags, cfg, the environment
// and the -board flag value. Unknown identifiers fail immediately.
func NewSelection(cfg Config, flagBoard string) (Selection, error) {
	s := Selection{AllowIncompatible: cfg.AllowIncompatible}
	for _, id := range board.Tagged() {
		s.Candidates = append(s.Candidates, Candidate{Source: SourceBuildTag, ID: id})
	}
	env, _ := LookupEnv(EnvBoard)
	for _, in := range []struct {
		src Source
		val string
	}{
		{SourceFile, cfg.Board},
		{SourceEnv, env},
		{SourceFlag, flagBoard},
	} {
		if strings.TrimSpace(in.val) == "" {
			continue
		}
		id, err := board.ParseID(in.val)
		if err != nil {
			return Selection{}, errcode.Wrap(errcode.InvalidConfig, "config: "+string(in.src), err)
		}
		s.Candidates = append(s.Candidates, Candidate{Source: in.src, ID: id})
	}
	return s, nil
}

// IDs returns the distinct boards named, sorted.
func (s Selection) IDs() []board.ID {
	seen := map[board.ID]bool{}
	var out []board.ID
	for _, c := range s.Candidates {
		if !seen[c.ID] {
			seen[c.ID] = true
			out = append(out, c.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resolve requires every source to agree on exactly one board.
func (s Selection) Resolve() (board.Profile, error) {
	const op = "config.Resolve"
	ids := s.IDs()
	if len(ids) > 1 {
		var parts []string
		for _, c := range s.Candidates {
			parts = append(parts, string(c.ID)+" ("+string(c.Source)+")")
		}
		return board.Profile{}, errcode.New(errcode.UnresolvedBoard, op,
			"conflicting board selections: "+strings.Join(parts, ", ")+"; select exactly one")
	}

	resolve := board.Resolve
	if s.AllowIncompatible {
		resolve = board.ResolveAny
	}
	p, err := resolve(ids...)
	if err != nil {
		if len(ids) == 0 {
			return board.Profile{}, &errcode.E{C: errcode.UnresolvedBoard, Op: op,
				Msg: "set one with a build tag, the config file, $" + EnvBoard + " or -board", Err: err}
		}
		return board.Profile{}, err
	}
	if !p.Supported() {
		glog.Warningf("Board %s is marked incompatible: %s", p.ID, p.Reason)
	}
	glog.Infof("Board selected: %s (%s, %s, chipset %s) via %s", p.ID, p.Name, p.SoC, p.Chipset, s.sources(p.ID))
	return p, nil
}

func (s Selection) sources(id board.ID) string {
	var out []string
	for _, c := range s.Candidates {
		if c.ID == id {
			out = append(out, string(c.Source))
		}
	}
	return strings.Join(out, ", ")
}
