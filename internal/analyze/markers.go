package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"litgen/internal/common"
)

// parseMarkers extracts literal directives from a doc comment. Directive
// comments are dropped by CommentGroup.Text, so the raw list is scanned.
func parseMarkers(doc *ast.CommentGroup) (variants []Variant, unknown []string) {
	if doc == nil {
		return nil, nil
	}

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, MarkerPrefix)
		if !ok {
			continue
		}

		name := rest
		if fields := strings.Fields(rest); len(fields) > 0 {
			name = fields[0]
		}

		if v, ok := ParseVariant(name); ok {
			variants = append(variants, v)
		} else {
			unknown = append(unknown, strings.TrimSpace(c.Text))
		}
	}

	return variants, unknown
}

// scanFile collects annotated top-level type declarations of file.
// Types declared inside function bodies are not visible at package scope
// and are never considered.
func scanFile(fset *token.FileSet, file *ast.File, info *types.Info) []Target {
	var targets []Target

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}

			variants, unknown := parseMarkers(doc)
			if len(variants) == 0 && len(unknown) == 0 {
				continue
			}

			var obj *types.TypeName
			if info != nil {
				obj, _ = info.Defs[typeSpec.Name].(*types.TypeName)
			}

			targets = append(targets, Target{
				Name:     typeSpec.Name.Name,
				Shape:    shapeOf(typeSpec, obj),
				Variants: variants,
				Unknown:  unknown,
				Generic:  typeSpec.TypeParams != nil && typeSpec.TypeParams.NumFields() > 0,
				Pos:      fset.Position(typeSpec.Name.Pos()),
				Obj:      obj,
			})
		}
	}

	return targets
}

// shapeOf classifies a declaration. The type-checked underlying type wins
// when available, so `type Queue list.List` counts as a struct.
func shapeOf(spec *ast.TypeSpec, obj *types.TypeName) Shape {
	if spec.Assign.IsValid() {
		return ShapeAlias
	}

	if obj != nil {
		if shape := shapeOfType(obj.Type().Underlying()); shape != ShapeUnknown {
			return shape
		}
	}

	return shapeOfExpr(spec.Type)
}

func shapeOfType(t types.Type) Shape {
	switch t.(type) {
	case *types.Struct:
		return ShapeStruct
	case *types.Interface:
		return ShapeInterface
	case *types.Basic:
		return ShapeBasic
	case *types.Pointer:
		return ShapePointer
	case *types.Slice:
		return ShapeSlice
	case *types.Array:
		return ShapeArray
	case *types.Map:
		return ShapeMap
	case *types.Signature:
		return ShapeFunc
	case *types.Chan:
		return ShapeChan
	default:
		return ShapeUnknown
	}
}

// shapeOfExpr is the syntactic fallback used when type information is missing.
func shapeOfExpr(expr ast.Expr) Shape {
	switch e := expr.(type) {
	case *ast.StructType:
		return ShapeStruct
	case *ast.InterfaceType:
		return ShapeInterface
	case *ast.StarExpr:
		return ShapePointer
	case *ast.ArrayType:
		if e.Len == nil {
			return ShapeSlice
		}

		return ShapeArray
	case *ast.MapType:
		return ShapeMap
	case *ast.FuncType:
		return ShapeFunc
	case *ast.ChanType:
		return ShapeChan
	case *ast.ParenExpr:
		return shapeOfExpr(e.X)
	default:
		return ShapeUnknown
	}
}

// isOutput reports whether file starts with the litgen header.
func isOutput(file *ast.File) bool {
	if len(file.Comments) == 0 || file.Comments[0].Pos() > file.Package {
		return false
	}

	return file.Comments[0].List[0].Text == GeneratedHeader
}

// fileImports returns the names file's imports declare in file scope.
// Blank and dot imports declare no name.
func fileImports(fset *token.FileSet, file *ast.File, info *types.Info) []Import {
	imports := make([]Import, 0, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		var name string

		switch {
		case spec.Name != nil:
			name = spec.Name.Name
		case info != nil && info.Implicits[spec] != nil:
			name = info.Implicits[spec].Name()
		default:
			name = common.PkgAlias(path)
		}

		if name == "_" || name == "." {
			continue
		}

		imports = append(imports, Import{Name: name, Path: path, Pos: fset.Position(spec.Pos())})
	}

	return imports
}
