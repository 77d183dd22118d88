package propfile

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Structured documents are flattened to dotted keys: {"db":{"port":5432}}
// becomes db.port=5432. Arrays of scalars are joined with ","; any other
// array is indexed (servers.0.host).

func decodeJSON(r io.Reader, into *Set) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return errors.New("invalid JSON document")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("top-level JSON value must be an object, got %s", root.Type)
	}
	flattenJSON("", root, into)
	return nil
}

func flattenJSON(prefix string, v gjson.Result, into *Set) {
	switch {
	case v.IsObject():
		v.ForEach(func(k, child gjson.Result) bool {
			flattenJSON(joinKey(prefix, k.String()), child, into)
			return true
		})
	case v.IsArray():
		items := v.Array()
		if scalars, ok := jsonScalars(items); ok {
			into.Put(prefix, strings.Join(scalars, ","))
			return
		}
		for i, item := range items {
			flattenJSON(joinKey(prefix, strconv.Itoa(i)), item, into)
		}
	default:
		into.Put(prefix, jsonScalar(v))
	}
}

func jsonScalars(items []gjson.Result) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsObject() || item.IsArray() {
			return nil, false
		}
		out = append(out, jsonScalar(item))
	}
	return out, true
}

func jsonScalar(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}

func decodeYAML(r io.Reader, into *Set) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("top-level YAML value must be a mapping, got %s", root.Tag)
	}
	flattenYAML("", root, into)
	return nil
}

func flattenYAML(prefix string, node *yaml.Node, into *Set) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			flattenYAML(joinKey(prefix, node.Content[i].Value), node.Content[i+1], into)
		}
	case yaml.SequenceNode:
		if scalars, ok := yamlScalars(node.Content); ok {
			into.Put(prefix, strings.Join(scalars, ","))
			return
		}
		for i, item := range node.Content {
			flattenYAML(joinKey(prefix, strconv.Itoa(i)), item, into)
		}
	default:
		into.Put(prefix, yamlScalar(node))
	}
}

func yamlScalars(items []*yaml.Node) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode {
			return nil, false
		}
		out = append(out, yamlScalar(item))
	}
	return out, true
}

func yamlScalar(node *yaml.Node) string {
	if node.ShortTag() == "!!null" {
		return ""
	}
	return node.Value
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func decodeTOML(r io.Reader, into *Set) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return err
	}
	flattenValue("", doc, into)
	return nil
}

func flattenValue(prefix string, v any, into *Set) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			flattenValue(joinKey(prefix, k), child, into)
		}
	case []any:
		scalars := make([]string, 0, len(val))
		for _, item := range val {
			if !isScalar(item) {
				for i, child := range val {
					flattenValue(joinKey(prefix, strconv.Itoa(i)), child, into)
				}
				return
			}
			scalars = append(scalars, scalarString(item))
		}
		into.Put(prefix, strings.Join(scalars, ","))
	default:
		into.Put(prefix, scalarString(val))
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	default:
		return true
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(val)
	}
}
