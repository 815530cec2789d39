package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Options configure code generation.
type Options struct {
	Package    string // package name of the generated file
	SchemaName string // schema file name, mentioned in the header
}

type keywordData struct {
	Const string // Go constant, e.g. LineStyleSolid
	Text  string // CSS keyword, e.g. solid
}

type domainData struct {
	Name       string // kebab-case domain name
	Type       string // Go type, e.g. LineStyleKeyword
	Table      string // name of the keyword table
	Keywords   []keywordData
	Properties []string
}

type propertyData struct {
	Name   string // CSS name
	Const  string // PropertyName constant
	Func   string // base name of the constructors
	Domain *domainData
	Unit   bool
	Zero   bool
	Number bool
	Text   bool
	Color  bool
	Manual bool
}

// funcs lists the constructor names generated for p.
func (p propertyData) funcs() []string {
	if p.Manual {
		return nil
	}
	var fs []string
	if p.Domain != nil {
		fs = append(fs, p.Func)
	}
	for _, s := range []struct {
		on     bool
		suffix string
	}{{p.Unit, "Unit"}, {p.Zero, "Zero"}, {p.Number, "Number"}, {p.Text, "Text"}, {p.Color, "RGBA"}} {
		if s.on {
			fs = append(fs, p.Func+s.suffix)
		}
	}
	return fs
}

type model struct {
	Package    string
	SchemaName string
	NeedsCSS   bool
	Domains    []*domainData
	Properties []propertyData
}

func buildModel(schema *Schema, opts Options) *model {
	m := &model{Package: opts.Package, SchemaName: opts.SchemaName}
	domains := make(map[string]*domainData)
	for _, spec := range schema.Properties {
		p := propertyData{
			Name:   spec.Name,
			Const:  "Prop" + goName(spec.Name),
			Func:   goName(spec.Name),
			Unit:   spec.Unit,
			Zero:   spec.Zero,
			Number: spec.Number,
			Text:   spec.Text,
			Color:  spec.Color,
			Manual: spec.Manual,
		}
		if len(spec.Keywords) > 0 {
			name := spec.DomainName()
			d, ok := domains[name]
			if !ok {
				prefix := goName(name)
				d = &domainData{
					Name:  name,
					Type:  prefix + "Keyword",
					Table: lowerFirst(prefix) + "Keywords",
				}
				for _, k := range spec.Keywords {
					d.Keywords = append(d.Keywords, keywordData{Const: prefix + goName(k), Text: k})
				}
				domains[name] = d
				m.Domains = append(m.Domains, d)
			}
			d.Properties = append(d.Properties, spec.Name)
			p.Domain = d
		}
		if p.Unit || p.Number || p.Color {
			m.NeedsCSS = true
		}
		m.Properties = append(m.Properties, p)
	}
	return m
}

// Generate renders the Go source for a schema. The output is gofmt-ed.
func Generate(schema *Schema, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "style"
	}
	if opts.SchemaName == "" {
		opts.SchemaName = "properties.yaml"
	}
	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, buildModel(schema, opts)); err != nil {
		return nil, fmt.Errorf("propgen: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("propgen: generated code does not format: %w", err)
	}
	return src, nil
}

// goName converts a kebab-case CSS name into an exported Go identifier,
// e.g. "border-top-width" ⇒ "BorderTopWidth", "optimizeSpeed" ⇒ "OptimizeSpeed".
func goName(kebab string) string {
	var b strings.Builder
	for _, part := range strings.Split(kebab, "-") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

var sourceTemplate = template.Must(template.New("properties").Funcs(template.FuncMap{
	"join": func(list []string) string { return strings.Join(list, ", ") },
}).Parse(sourceTmpl))

const sourceTmpl = `// Code generated by propgen from {{.SchemaName}}; DO NOT EDIT.

package {{.Package}}
{{if .NeedsCSS}}
import (
	"github.com/npillmayer/stylist/css"
)
{{end}}
// Property names.
const (
{{- range $i, $p := .Properties}}
	{{$p.Const}}{{if eq $i 0}} PropertyName = iota + 1{{end}}
{{- end}}
)

var propertyNames = [...]string{
	"",
{{- range .Properties}}
	"{{.Name}}",
{{- end}}
}
{{range $d := .Domains}}
// {{$d.Type}} enumerates the keywords of {{join $d.Properties}}.
type {{$d.Type}} uint8

// Keywords of type {{$d.Type}}.
const (
{{- range $i, $k := $d.Keywords}}
	{{$k.Const}}{{if eq $i 0}} {{$d.Type}} = iota{{end}}
{{- end}}
)

var {{$d.Table}} = [...]string{ {{- range $i, $k := $d.Keywords}}{{if $i}}, {{end}}"{{$k.Text}}"{{end -}} }

func (k {{$d.Type}}) String() string {
	return keywordText({{$d.Table}}[:], int(k))
}
{{end}}
{{- range $p := .Properties}}{{if not $p.Manual}}
{{- if $p.Domain}}
// {{$p.Func}} creates property {{$p.Name}} from a keyword.
func {{$p.Func}}(k {{$p.Domain.Type}}) Property {
	return declare({{$p.Const}}, keywordValue(k.String()))
}
{{end}}
{{- if $p.Unit}}
// {{$p.Func}}Unit creates property {{$p.Name}} from a dimension.
func {{$p.Func}}Unit(u css.Unit) Property {
	return declare({{$p.Const}}, unitValue(u))
}
{{end}}
{{- if $p.Zero}}
// {{$p.Func}}Zero creates property {{$p.Name}} with a value of 0.
func {{$p.Func}}Zero() Property {
	return declare({{$p.Const}}, zeroValue())
}
{{end}}
{{- if $p.Number}}
// {{$p.Func}}Number creates property {{$p.Name}} from a unit-less number.
func {{$p.Func}}Number(n css.Scalar) Property {
	return declare({{$p.Const}}, numberValue(n))
}
{{end}}
{{- if $p.Text}}
// {{$p.Func}}Text creates property {{$p.Name}} from raw text, which is inserted verbatim.
func {{$p.Func}}Text(s string) Property {
	return declare({{$p.Const}}, textValue(s))
}
{{end}}
{{- if $p.Color}}
// {{$p.Func}}RGBA creates property {{$p.Name}} from a color.
func {{$p.Func}}RGBA(c css.Color) Property {
	return declare({{$p.Const}}, colorValue(c))
}
{{end}}
{{- end}}{{end -}}
`
