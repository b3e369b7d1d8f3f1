package syntax

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"reflect"
	"strconv"

	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
)

// NodeKey is the object key holding the go/ast node type name.
const NodeKey = "node"

var (
	posType    = reflect.TypeOf(token.NoPos)
	tokenType  = reflect.TypeOf(token.ILLEGAL)
	objectType = reflect.TypeOf((*ast.Object)(nil))
	scopeType  = reflect.TypeOf((*ast.Scope)(nil))
	fileType   = reflect.TypeOf(ast.File{})
)

// goParser parses Go source files with go/parser.
type goParser struct{}

func (goParser) Name() string {
	return "go"
}

func (goParser) Extension() string {
	return ".go"
}

// Parse parses src as a Go file. Object resolution is skipped so the tree is acyclic.
func (goParser) Parse(src []byte) (snapshot.Value, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "sample.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) {
			return snapshot.Null(), diagnosticsFromScanner(list)
		}

		return snapshot.Null(), fmt.Errorf("go parser: %w", err)
	}

	conv := astConverter{fset: fset}

	return conv.convert(reflect.ValueOf(file))
}

func diagnosticsFromScanner(list scanner.ErrorList) error {
	diagnostics := make([]Diagnostic, 0, len(list))
	for _, e := range list {
		diagnostics = append(diagnostics, Diagnostic{
			Line:    e.Pos.Line,
			Column:  e.Pos.Column,
			Message: e.Msg,
		})
	}

	return &DiagnosticError{Diagnostics: diagnostics}
}

// astConverter walks go/ast values by reflection. Struct fields are emitted in
// declaration order, which is what keeps the output stable.
type astConverter struct {
	fset *token.FileSet
}

func (c astConverter) convert(v reflect.Value) (snapshot.Value, error) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return snapshot.Null(), nil
		}

		return c.convert(v.Elem())
	case reflect.Struct:
		return c.node(v)
	case reflect.Slice:
		items := make([]snapshot.Value, 0, v.Len())

		for i := range v.Len() {
			item, err := c.convert(v.Index(i))
			if err != nil {
				return snapshot.Null(), err
			}

			items = append(items, item)
		}

		return snapshot.Array(items...), nil
	case reflect.String:
		return snapshot.String(v.String()), nil
	case reflect.Bool:
		return snapshot.Bool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v.Type() {
		case posType:
			return c.position(token.Pos(v.Int())), nil
		case tokenType:
			return snapshot.String(token.Token(v.Int()).String()), nil
		}

		return snapshot.Int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return snapshot.Number(json.Number(strconv.FormatUint(v.Uint(), 10))), nil
	default:
		return snapshot.Null(), fmt.Errorf("go parser: unsupported %s value of type %s", v.Kind(), v.Type())
	}
}

func (c astConverter) node(v reflect.Value) (snapshot.Value, error) {
	t := v.Type()
	fields := []snapshot.Member{snapshot.Field(NodeKey, snapshot.String(t.Name()))}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || skipField(t, f) {
			continue
		}

		value, err := c.convert(v.Field(i))
		if err != nil {
			return snapshot.Null(), err
		}

		fields = append(fields, snapshot.Field(f.Name, value))
	}

	return snapshot.Object(fields...), nil
}

// skipField drops back references and fields that duplicate other parts of the tree.
func skipField(owner reflect.Type, f reflect.StructField) bool {
	if f.Type == objectType || f.Type == scopeType {
		return true
	}

	return owner == fileType && (f.Name == "Imports" || f.Name == "Unresolved")
}

func (c astConverter) position(pos token.Pos) snapshot.Value {
	if !pos.IsValid() {
		return snapshot.Null()
	}

	p := c.fset.Position(pos)

	return snapshot.String(fmt.Sprintf("%d:%d", p.Line, p.Column))
}
