// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command gen renders the httperr kind table and the per-kind constructors
// from kinds.yaml. It is invoked through go generate in the httperr package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"log"
	"os"
	"regexp"
	"text/template"

	"gopkg.in/yaml.v3"
)

// KindSpec is one entry of kinds.yaml.
type KindSpec struct {
	Name    string `yaml:"name"`
	Code    string `yaml:"code"`
	Status  int    `yaml:"status"`
	Message string `yaml:"message"`
}

// Catalog is the root document of kinds.yaml.
type Catalog struct {
	Kinds []KindSpec `yaml:"kinds"`
}

var shortCodePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)

func main() {
	in := flag.String("in", "kinds.yaml", "kind catalog to read")
	out := flag.String("out", "kinds_gen.go", "Go file to write")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("reading catalog: %v", err)
	}

	catalog, err := Load(data)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	src, err := Render(catalog)
	if err != nil {
		log.Fatalf("rendering catalog: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o600); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
}

// Load parses and validates a kind catalog.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid catalog YAML: %w", err)
	}
	if len(c.Kinds) == 0 {
		return nil, fmt.Errorf("catalog has no kinds")
	}

	names := make(map[string]struct{}, len(c.Kinds))
	codes := make(map[string]struct{}, len(c.Kinds))
	statuses := make(map[int]struct{}, len(c.Kinds))
	for i, k := range c.Kinds {
		if !token.IsIdentifier(k.Name) || !token.IsExported(k.Name) {
			return nil, fmt.Errorf("kind %d: name %q is not an exported Go identifier", i, k.Name)
		}
		if !shortCodePattern.MatchString(k.Code) {
			return nil, fmt.Errorf("kind %s: code %q is not upper snake case", k.Name, k.Code)
		}
		if k.Status < 400 || k.Status > 599 {
			return nil, fmt.Errorf("kind %s: status %d is not an error status", k.Name, k.Status)
		}
		if k.Message == "" {
			return nil, fmt.Errorf("kind %s: default message is empty", k.Name)
		}
		if _, dup := names[k.Name]; dup {
			return nil, fmt.Errorf("duplicate kind name %q", k.Name)
		}
		if _, dup := codes[k.Code]; dup {
			return nil, fmt.Errorf("duplicate kind code %q", k.Code)
		}
		if _, dup := statuses[k.Status]; dup {
			return nil, fmt.Errorf("duplicate kind status %d", k.Status)
		}
		names[k.Name] = struct{}{}
		codes[k.Code] = struct{}{}
		statuses[k.Status] = struct{}{}
	}

	return &c, nil
}

// Render produces the gofmt-ed source of kinds_gen.go.
func Render(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, c); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

var fileTemplate = template.Must(template.New("kinds").Parse(`// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Code generated by internal/gen from kinds.yaml. DO NOT EDIT.

package httperr

// Recognized error kinds.
const (
{{- range $i, $k := .Kinds}}
	Kind{{$k.Name}}{{if eq $i 0}} Kind = iota + 1{{end}}
{{- end}}
)

var kinds = []kindInfo{
{{- range .Kinds}}
	{Kind{{.Name}}, {{.Status}}, {{printf "%q" .Code}}, {{printf "%q" .Message}}},
{{- end}}
}
{{range .Kinds}}
// {{.Name}} returns an *Error of kind Kind{{.Name}} ({{.Status}} {{.Code}}).
func {{.Name}}(p Payload) *Error { return New(Kind{{.Name}}, p) }
{{end -}}
`))
