package propfile

import (
	"io"

	"github.com/magiconair/properties"
)

// flatLoader reads java-properties text as UTF-8 and keeps ${...}
// references literal, so raw values reach the type checks unchanged.
var flatLoader = properties.Loader{
	Encoding:         properties.UTF8,
	DisableExpansion: true,
}

// decodeFlat parses line-oriented properties text: # and ! comments,
// '=', ':' or blank separators, backslash continuations and \uXXXX escapes.
func decodeFlat(r io.Reader, into *Set) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	props, err := flatLoader.LoadBytes(data)
	if err != nil {
		return err
	}
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		into.Put(key, value)
	}
	return nil
}
