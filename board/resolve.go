package board

import (
	"reflect"
	"sort"
	"strings"

	"modemboard-go/errcode"
	"modemboard-go/x/strx"
)

var pinType = reflect.TypeOf(Pin{})

// index maps every accepted spelling of an identifier to its ID.
var index = map[string]ID{}

func init() {
	for id, p := range profiles {
		index[strx.FoldKey(string(id))] = id
		index[strx.FoldKey(p.Macro)] = id
	}
	// A broken table is a programming error; refuse to start.
	for _, id := range IDs() {
		p, err := LookupAny(id)
		if err != nil {
			panic("board: " + err.Error())
		}
		if err := p.Validate(); err != nil {
			panic("board: " + err.Error())
		}
	}
}

// IDs returns every identifier in the table, sorted.
func IDs() []ID {
	out := make([]ID, 0, len(profiles))
	for id := range profiles {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Supported returns the identifiers that Lookup accepts, sorted.
func Supported() []ID {
	var out []ID
	for _, id := range IDs() {
		if profiles[id].Status == StatusSupported {
			out = append(out, id)
		}
	}
	return out
}

// ParseID accepts the canonical identifier ("t-a7670"), the vendor macro
// ("LILYGO_T_A7670") or the build-tag spelling ("lilygo_t_a7670").
func ParseID(s string) (ID, error) {
	if id, ok := index[strx.FoldKey(s)]; ok {
		return id, nil
	}
	return "", errcode.New(errcode.UnknownBoard, "board.ParseID",
		"unknown board "+quote(s)+"; supported: "+JoinIDs(Supported()))
}

// Lookup returns the resolved profile for id: the board's own fields plus
// its family fields. Incompatible boards are rejected.
func Lookup(id ID) (Profile, error) {
	p, err := LookupAny(id)
	if err != nil {
		return Profile{}, err
	}
	if p.Status != StatusSupported {
		return Profile{}, errcode.New(errcode.IncompatibleBoard, "board.Lookup",
			string(id)+": "+p.Reason)
	}
	return p, nil
}

// LookupAny is Lookup without the status check.
func LookupAny(id ID) (Profile, error) {
	own, ok := profiles[id]
	if !ok {
		return Profile{}, errcode.New(errcode.UnknownBoard, "board.Lookup",
			"unknown board "+quote(string(id))+"; supported: "+JoinIDs(Supported()))
	}
	p := own.clone()
	p.ID = id
	if p.Family == FamilyNone {
		return p, nil
	}
	fam, ok := families[p.Family]
	if !ok {
		return Profile{}, errcode.New(errcode.InvalidProfile, "board.Lookup",
			string(id)+": no sub-profile for family "+quote(string(p.Family)))
	}
	if err := Merge(&p, fam); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Resolve applies the selection policy: exactly one distinct identifier
// must be given. Zero or several yield errcode.UnresolvedBoard.
func Resolve(ids ...ID) (Profile, error) { return resolve(Lookup, ids) }

// ResolveAny is Resolve admitting incompatible boards.
func ResolveAny(ids ...ID) (Profile, error) { return resolve(LookupAny, ids) }

func resolve(lookup func(ID) (Profile, error), ids []ID) (Profile, error) {
	uniq := dedupe(ids)
	switch len(uniq) {
	case 0:
		return Profile{}, errcode.New(errcode.UnresolvedBoard, "board.Resolve",
			"no board selected; select exactly one of: "+JoinIDs(Supported()))
	case 1:
		return lookup(uniq[0])
	default:
		return Profile{}, errcode.New(errcode.UnresolvedBoard, "board.Resolve",
			"conflicting board selections "+JoinIDs(uniq)+"; select exactly one")
	}
}

// Merge copies every field set in frag into dst. A field set on both sides
// is an errcode.FieldCollision naming the field path.
func Merge(dst *Profile, frag Profile) error {
	return mergeValue(reflect.ValueOf(dst).Elem(), reflect.ValueOf(frag), "")
}

func mergeValue(dst, src reflect.Value, path string) error {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Name
		if path != "" {
			name = path + "." + f.Name
		}
		d, s := dst.Field(i), src.Field(i)
		if f.Type.Kind() == reflect.Struct && f.Type != pinType {
			if err := mergeValue(d, s, name); err != nil {
				return err
			}
			continue
		}
		if s.IsZero() {
			continue
		}
		if !d.IsZero() {
			return errcode.New(errcode.FieldCollision, "board.Merge",
				name+" is set by both the board and its family")
		}
		d.Set(s)
	}
	return nil
}

func dedupe(ids []ID) []ID {
	seen := make(map[ID]bool, len(ids))
	var out []ID
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// JoinIDs renders ids as a comma-separated list.
func JoinIDs(ids []ID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}
	return strings.Join(s, ", ")
}

func quote(s string) string { return `"` + s + `"` }
