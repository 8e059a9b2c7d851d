package xliff

import (
	"encoding/xml"
	"io"
	"os"
)

// Document is a parsed XLIFF 1.2 document, reduced to the parts terminology
// ingestion needs.
type Document struct {
	XMLName xml.Name `xml:"xliff"`
	Version string   `xml:"version,attr"`
	Files   []File   `xml:"file"`
}

// File is one <file> element. Business Central exports carry exactly one per
// document, but the format allows several.
type File struct {
	Original       string `xml:"original,attr"`
	SourceLanguage string `xml:"source-language,attr"`
	TargetLanguage string `xml:"target-language,attr"`
	Body           Body   `xml:"body"`
}

// Body holds translation units, possibly nested inside <group> elements.
type Body struct {
	Groups []Group     `xml:"group"`
	Units  []TransUnit `xml:"trans-unit"`
}

// Group nests arbitrarily deep in Business Central exports.
type Group struct {
	ID     string      `xml:"id,attr"`
	Groups []Group     `xml:"group"`
	Units  []TransUnit `xml:"trans-unit"`
}

// TransUnit is one source/target pair. Translate carries the literal
// attribute value; "no" marks units excluded from translation.
type TransUnit struct {
	ID        string `xml:"id,attr"`
	Translate string `xml:"translate,attr"`
	Source    string `xml:"source"`
	Target    string `xml:"target"`
}

// Translatable reports whether the unit should be ingested.
func (u TransUnit) Translatable() bool {
	return u.Translate != "no"
}

// AllUnits returns every trans-unit in the file, walking nested groups
// depth-first so repeated parses yield the same order.
func (f *File) AllUnits() []TransUnit {
	units := make([]TransUnit, 0, len(f.Body.Units))
	units = append(units, f.Body.Units...)
	for _, group := range f.Body.Groups {
		units = collectUnits(units, group)
	}
	return units
}

func collectUnits(units []TransUnit, group Group) []TransUnit {
	units = append(units, group.Units...)
	for _, nested := range group.Groups {
		units = collectUnits(units, nested)
	}
	return units
}

// Parse decodes an XLIFF 1.2 document from a reader.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseFile decodes an XLIFF 1.2 document from disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
