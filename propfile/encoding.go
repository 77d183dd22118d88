package propfile

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// Encoding selects how a resource is decoded.
type Encoding int

const (
	// Flat is line-oriented key=value text.
	Flat Encoding = iota
	// XML is the <properties><entry key="k">v</entry></properties> document.
	XML
	// JSON is a JSON object flattened to dotted keys.
	JSON
	// YAML is a YAML mapping flattened to dotted keys.
	YAML
	// TOML is a TOML document flattened to dotted keys.
	TOML
)

// String returns the lower-case encoding name.
func (e Encoding) String() string {
	switch e {
	case Flat:
		return "flat"
	case XML:
		return "xml"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Ident returns the exported identifier of e in this package, e.g. "XML".
func (e Encoding) Ident() string {
	switch e {
	case XML:
		return "XML"
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	default:
		return "Flat"
	}
}

// DetectEncoding picks the encoding from the resource suffix, ignoring case.
// Unknown suffixes are Flat.
func DetectEncoding(resource string) Encoding {
	switch strings.ToLower(path.Ext(resource)) {
	case ".xml":
		return XML
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return Flat
	}
}

// Decode reads r with enc and stores its pairs in into. Nothing is stored
// when decoding fails.
func Decode(r io.Reader, enc Encoding, into *Set) error {
	decoded := NewSet()
	var err error
	switch enc {
	case Flat:
		err = decodeFlat(r, decoded)
	case XML:
		err = decodeXML(r, decoded)
	case JSON:
		err = decodeJSON(r, decoded)
	case YAML:
		err = decodeYAML(r, decoded)
	case TOML:
		err = decodeTOML(r, decoded)
	default:
		err = fmt.Errorf("unsupported encoding %s", enc)
	}
	if err != nil {
		return err
	}
	into.Merge(decoded)
	return nil
}

// joinKey appends child to a dotted key prefix.
func joinKey(prefix, child string) string {
	if prefix == "" {
		return child
	}
	return prefix + "." + child
}
