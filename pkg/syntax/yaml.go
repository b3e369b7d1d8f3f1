package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
)

// maxYAMLNodes bounds alias expansion so a few anchors cannot blow up the tree.
const maxYAMLNodes = 1 << 20

var yamlLineRe = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

// yamlDecimalRe matches integer text that is also a valid JSON number.
var yamlDecimalRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

// yamlParser parses YAML streams. Every document becomes one array item and mappings
// keep their document order.
type yamlParser struct{}

func (yamlParser) Name() string {
	return "yaml"
}

func (yamlParser) Extension() string {
	return ".yaml"
}

func (yamlParser) Parse(src []byte) (snapshot.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	conv := &yamlConverter{}
	docs := []snapshot.Value{}

	for {
		var node yaml.Node

		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return snapshot.Null(), yamlDiagnostic(err)
		}

		doc, err := conv.convert(&node)
		if err != nil {
			return snapshot.Null(), err
		}

		docs = append(docs, doc)
	}

	return snapshot.Array(docs...), nil
}

func yamlDiagnostic(err error) error {
	if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
		line, _ := strconv.Atoi(m[1])
		return Invalid(line, 0, "%s", m[2])
	}

	return Invalid(0, 0, "%s", err.Error())
}

type yamlConverter struct {
	nodes int
}

func (c *yamlConverter) convert(n *yaml.Node) (snapshot.Value, error) {
	c.nodes++
	if c.nodes > maxYAMLNodes {
		return snapshot.Null(), Invalid(n.Line, n.Column, "document expands to more than %d nodes", maxYAMLNodes)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return snapshot.Null(), nil
		}

		return c.convert(n.Content[0])
	case yaml.SequenceNode:
		items := make([]snapshot.Value, 0, len(n.Content))

		for _, child := range n.Content {
			item, err := c.convert(child)
			if err != nil {
				return snapshot.Null(), err
			}

			items = append(items, item)
		}

		return snapshot.Array(items...), nil
	case yaml.MappingNode:
		return c.mapping(n)
	case yaml.AliasNode:
		if n.Alias == nil {
			return snapshot.Null(), Invalid(n.Line, n.Column, "unknown alias %q", n.Value)
		}

		return c.convert(n.Alias)
	case yaml.ScalarNode:
		return scalar(n), nil
	}

	return snapshot.Null(), Invalid(n.Line, n.Column, "unsupported node kind %d", n.Kind)
}

func (c *yamlConverter) mapping(n *yaml.Node) (snapshot.Value, error) {
	fields := make([]snapshot.Member, 0, len(n.Content)/2)
	seen := make(map[yamlKey]struct{}, len(n.Content)/2)
	names := make(map[string]struct{}, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		for key.Kind == yaml.AliasNode && key.Alias != nil {
			key = key.Alias
		}

		if key.Kind != yaml.ScalarNode {
			return snapshot.Null(), Invalid(key.Line, key.Column, "mapping keys must be scalars")
		}

		id := yamlKey{tag: key.ShortTag(), value: key.Value}
		if _, dup := seen[id]; dup {
			return snapshot.Null(), Invalid(key.Line, key.Column, "mapping key %q already defined", key.Value)
		}

		seen[id] = struct{}{}

		// Keys that differ only by tag ('1' and 1) keep the tag in the field name.
		name := key.Value
		if _, taken := names[name]; taken {
			name = id.tag + " " + key.Value
		}

		if _, taken := names[name]; taken {
			return snapshot.Null(), Invalid(key.Line, key.Column, "mapping key %q collides with another key", name)
		}

		names[name] = struct{}{}

		value, err := c.convert(n.Content[i+1])
		if err != nil {
			return snapshot.Null(), err
		}

		fields = append(fields, snapshot.Field(name, value))
	}

	return snapshot.Object(fields...), nil
}

type yamlKey struct {
	tag   string
	value string
}

// scalar resolves a scalar by its tag. Values JSON cannot carry (NaN, timestamps,
// binary) are kept as their source text. Integers beyond int64 keep their digits.
func scalar(n *yaml.Node) snapshot.Value {
	switch n.ShortTag() {
	case "!!null":
		return snapshot.Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return snapshot.Bool(b)
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return snapshot.Int(i)
		}

		if yamlDecimalRe.MatchString(n.Value) {
			return snapshot.Number(json.Number(n.Value))
		}
	case "!!float":
		// Integers too large for int64 resolve as floats; keep their digits.
		if yamlDecimalRe.MatchString(n.Value) {
			return snapshot.Number(json.Number(n.Value))
		}

		var f float64
		if err := n.Decode(&f); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return snapshot.Float(f)
		}
	}

	return snapshot.String(n.Value)
}
