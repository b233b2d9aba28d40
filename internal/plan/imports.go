package plan

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"litgen/internal/common"
)

// importSet assigns file-local names to the packages helper signatures
// reference and renders types with them.
type importSet struct {
	self     *types.Package
	local    map[string]string // package path -> local name
	declared map[string]string // package path -> package clause name
	byName   map[string]string // local name -> package path
	// reserved reports names the local package name must not take.
	reserved func(name string) bool
}

func newImportSet(self *types.Package, reserved func(string) bool) *importSet {
	return &importSet{
		self:     self,
		local:    make(map[string]string),
		declared: make(map[string]string),
		byName:   make(map[string]string),
		reserved: reserved,
	}
}

// qualifier implements types.Qualifier, recording every package it sees.
func (s *importSet) qualifier(pkg *types.Package) string {
	if pkg == nil || (s.self != nil && pkg.Path() == s.self.Path()) {
		return ""
	}

	if name, ok := s.local[pkg.Path()]; ok {
		return name
	}

	base := pkg.Name()
	if base == "" {
		base = common.PkgAlias(pkg.Path())
	}

	name := base
	for i := 2; s.taken(name); i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}

	s.local[pkg.Path()] = name
	s.declared[pkg.Path()] = base
	s.byName[name] = pkg.Path()

	return name
}

func (s *importSet) taken(name string) bool {
	if _, ok := s.byName[name]; ok {
		return true
	}

	// File-block and package-block identifiers may not coincide.
	if s.self != nil && s.self.Scope().Lookup(name) != nil {
		return true
	}

	return s.reserved != nil && s.reserved(name)
}

// typeString renders t as it must appear in the generated file.
func (s *importSet) typeString(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// imports returns the recorded packages sorted by path.
func (s *importSet) imports() []Import {
	result := make([]Import, 0, len(s.local))

	for path, name := range s.local {
		imp := Import{Path: path}
		if name != s.declared[path] {
			imp.Alias = name
		}

		result = append(result, imp)
	}

	slices.SortFunc(result, func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})

	return result
}
