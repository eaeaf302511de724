package cli

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"

	"github.com/toyz/dendrite/internal/directive"
)

// Diagnostic describes one invalid bind directive found in a source file
type Diagnostic struct {
	File    string
	Line    int
	Struct  string
	Field   string
	Tag     string
	Message string
}

// CheckResult summarizes a checker run
type CheckResult struct {
	FilesChecked int
	TagsChecked  int
	Diagnostics  []Diagnostic
}

// Clean reports whether no diagnostics were produced
func (r CheckResult) Clean() bool {
	return len(r.Diagnostics) == 0
}

// TagChecker statically validates bind directives in Go source files
type TagChecker struct {
	fset *token.FileSet
}

// NewTagChecker creates a new tag checker
func NewTagChecker() *TagChecker {
	return &TagChecker{fset: token.NewFileSet()}
}

// CheckFiles parses each file and validates every bind tag it declares
func (c *TagChecker) CheckFiles(files []string) (CheckResult, error) {
	result := CheckResult{}

	for _, file := range files {
		diags, tags, err := c.checkFile(file)
		if err != nil {
			return result, err
		}
		result.FilesChecked++
		result.TagsChecked += tags
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	return result, nil
}

func (c *TagChecker) checkFile(path string) ([]Diagnostic, int, error) {
	f, err := parser.ParseFile(c.fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var diags []Diagnostic
	tags := 0

	ast.Inspect(f, func(n ast.Node) bool {
		typeSpec, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		structType, ok := typeSpec.Type.(*ast.StructType)
		if !ok {
			return true
		}

		for _, field := range structType.Fields.List {
			if field.Tag == nil {
				continue
			}
			raw, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				continue
			}
			bindTag, ok := reflect.StructTag(raw).Lookup("bind")
			if !ok {
				continue
			}

			tags++
			if _, err := directive.Validate(bindTag); err != nil {
				pos := c.fset.Position(field.Tag.Pos())
				diags = append(diags, Diagnostic{
					File:    pos.Filename,
					Line:    pos.Line,
					Struct:  typeSpec.Name.Name,
					Field:   fieldName(field),
					Tag:     bindTag,
					Message: err.Error(),
				})
			}
		}
		return true
	})

	return diags, tags, nil
}

func fieldName(field *ast.Field) string {
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}
	// embedded field
	return ""
}
