package propfile

import (
	"encoding/xml"
	"fmt"
	"io"
)

type xmlProperties struct {
	XMLName xml.Name   `xml:"properties"`
	Comment string     `xml:"comment"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Key   *string `xml:"key,attr"`
	Value string  `xml:",chardata"`
}

// decodeXML reads the properties XML document:
//
//	<properties>
//	  <comment>optional</comment>
//	  <entry key="server.timeout">30s</entry>
//	</properties>
func decodeXML(r io.Reader, into *Set) error {
	var doc xmlProperties
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return err
	}
	for i, entry := range doc.Entries {
		if entry.Key == nil {
			return fmt.Errorf("entry %d has no key attribute", i+1)
		}
		into.Put(*entry.Key, entry.Value)
	}
	return nil
}
