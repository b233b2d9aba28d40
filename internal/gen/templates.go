package gen

import (
	"text/template"

	"litgen/internal/analyze"
)

// Header is the first line of every generated file.
const Header = analyze.GeneratedHeader

var fileTemplate = template.Must(template.New("file").Parse(`{{.Header}}

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Helpers}}{{if .IsPairwise}}{{template "pairs" .}}{{else}}{{template "elems" .}}{{end}}
{{end}}`))

var _ = template.Must(fileTemplate.New("elems").Parse(`{{range .Doc}}// {{.}}
{{end}}func {{.Name}}(elems ...{{.ElemType}}) {{.ResultType}} {
	temp := {{.Constructor}}()
	for _, elem := range elems {
		temp.{{.Method}}(elem)
	}

	return temp
}
`))

var _ = template.Must(fileTemplate.New("pairs").Parse(`// {{.PairName}} is one key => value entry passed to {{.Name}}.
type {{.PairName}} struct {
	Key   {{.KeyType}}
	Value {{.ValueType}}
}

{{range .Doc}}// {{.}}
{{end}}func {{.Name}}(pairs ...{{.PairName}}) {{.ResultType}} {
	temp := {{.Constructor}}()
	for _, pair := range pairs {
		temp.{{.Method}}(pair.Key, pair.Value)
	}

	return temp
}
`))
