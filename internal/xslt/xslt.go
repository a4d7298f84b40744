// Package xslt assembles XSLT 1.0 stylesheets from configuration and embeds
// them into XML export documents so the exports render themselves in a browser.
package xslt

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"
)

const (
	XSLNamespace = "http://www.w3.org/1999/XSL/Transform"
	// EmbeddedID is the id an embedded stylesheet is referenced by.
	EmbeddedID = "stylesheet"
)

type Namespace struct {
	Prefix string `yaml:"prefix" validate:"required"`
	URI    string `yaml:"uri" validate:"required"`
}

type Output struct {
	Method        string `yaml:"method" validate:"omitempty,oneof=xml html text"`
	Encoding      string `yaml:"encoding"`
	Indent        bool   `yaml:"indent"`
	DoctypeSystem string `yaml:"doctype_system"`
	DoctypePublic string `yaml:"doctype_public"`
}

// Param is a top-level or template parameter. Select is an XPath expression;
// Value is a literal string used when Select is empty.
type Param struct {
	Name   string `yaml:"name" validate:"required"`
	Select string `yaml:"select"`
	Value  string `yaml:"value"`
}

type Variable struct {
	Name   string `yaml:"name" validate:"required"`
	Select string `yaml:"select"`
	Body   string `yaml:"body"` // raw XSLT, used when Select is empty
}

// Template is one xsl:template. Body is a raw XSLT fragment and is trusted.
type Template struct {
	Match  string  `yaml:"match" validate:"required_without=Name"`
	Name   string  `yaml:"name" validate:"required_without=Match"`
	Mode   string  `yaml:"mode"`
	Params []Param `yaml:"params" validate:"dive"`
	Body   string  `yaml:"body"`
}

type Stylesheet struct {
	Version    string      `yaml:"version"`
	ID         string      `yaml:"id"`
	Namespaces []Namespace `yaml:"namespaces" validate:"dive"`
	Output     Output      `yaml:"output"`
	Params     []Param     `yaml:"params" validate:"dive"`
	Variables  []Variable  `yaml:"variables" validate:"dive"`
	Templates  []Template  `yaml:"templates" validate:"dive"`
	// ExcludePrefixes lists namespace prefixes kept out of the result tree.
	ExcludePrefixes []string `yaml:"exclude_prefixes"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var stylesheetTmpl = template.Must(template.New("stylesheet").Funcs(template.FuncMap{
	"attr": attr,
	"text": attr,
	"join": strings.Join,
}).Parse(`<xsl:stylesheet version="{{attr .Version}}" xmlns:xsl="` + XSLNamespace + `"
{{- range .Namespaces}} xmlns:{{.Prefix}}="{{attr .URI}}"{{end}}
{{- with .ExcludePrefixes}} exclude-result-prefixes="{{attr (join . " ")}}"{{end}}
{{- with .ID}} id="{{attr .}}"{{end}}>
{{- with .Output}}
	<xsl:output{{with .Method}} method="{{attr .}}"{{end}}{{with .Encoding}} encoding="{{attr .}}"{{end}}{{if .Indent}} indent="yes"{{end}}{{with .DoctypeSystem}} doctype-system="{{attr .}}"{{end}}{{with .DoctypePublic}} doctype-public="{{attr .}}"{{end}}/>
{{- end}}
{{- range .Params}}
	{{template "param" .}}
{{- end}}
{{- range .Variables}}
	{{if .Select}}<xsl:variable name="{{attr .Name}}" select="{{attr .Select}}"/>{{else}}<xsl:variable name="{{attr .Name}}">{{.Body}}</xsl:variable>{{end}}
{{- end}}
{{- range .Templates}}

	<xsl:template{{with .Match}} match="{{attr .}}"{{end}}{{with .Name}} name="{{attr .}}"{{end}}{{with .Mode}} mode="{{attr .}}"{{end}}>
	{{- range .Params}}
		{{template "param" .}}
	{{- end}}
		{{.Body}}
	</xsl:template>
{{- end}}
</xsl:stylesheet>
{{- define "param"}}{{if .Select}}<xsl:param name="{{attr .Name}}" select="{{attr .Select}}"/>{{else if .Value}}<xsl:param name="{{attr .Name}}">{{text .Value}}</xsl:param>{{else}}<xsl:param name="{{attr .Name}}"/>{{end}}{{end}}`))

func attr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// Validate checks the configuration before generation.
func (s Stylesheet) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid stylesheet: %w", err)
	}
	return nil
}

// Write writes the stylesheet element (without an XML declaration) to w.
func (s Stylesheet) Write(w io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Version == "" {
		s.Version = "1.0"
	}
	return stylesheetTmpl.Execute(w, s)
}

// Generate returns a standalone stylesheet document.
func Generate(s Stylesheet) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := s.Write(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Document is an XML export: a root element and its already-serialized children.
type Document struct {
	Root       string
	Namespaces []Namespace
	Body       []byte
}

// Embed writes doc with s placed as the first child of the root element. The
// document points at the stylesheet through an xml-stylesheet instruction and
// declares the stylesheet id attribute in its internal DTD so browsers can
// resolve "#stylesheet".
func Embed(w io.Writer, s Stylesheet, doc Document) error {
	if doc.Root == "" {
		return fmt.Errorf("export document without root element")
	}
	s.ID = EmbeddedID
	// keep the stylesheet element out of its own output
	s.Templates = append([]Template{{Match: "xsl:stylesheet"}}, s.Templates...)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	fmt.Fprintf(&buf, "<?xml-stylesheet type=\"text/xsl\" href=\"#%s\"?>\n", EmbeddedID)
	fmt.Fprintf(&buf, "<!DOCTYPE %s [\n<!ATTLIST xsl:stylesheet\nid ID #REQUIRED>\n]>\n", doc.Root)
	fmt.Fprintf(&buf, "<%s", doc.Root)
	for _, ns := range doc.Namespaces {
		fmt.Fprintf(&buf, " xmlns:%s=\"%s\"", ns.Prefix, attr(ns.URI))
	}
	buf.WriteString(">\n")
	if err := s.Write(&buf); err != nil {
		return err
	}
	buf.WriteByte('\n')
	buf.Write(doc.Body)
	fmt.Fprintf(&buf, "\n</%s>\n", doc.Root)

	_, err := buf.WriteTo(w)
	return err
}
