package osm2graph

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

type xmlDocument struct {
	doc *etree.Document
}

func readXML(r io.Reader) (*xmlDocument, error) {
	doc := etree.NewDocument()
	_, err := doc.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Malformed XML")
	}
	err = checkTopLevel(doc)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	if root.Tag != "osm" {
		return nil, errors.Errorf("Root element should be 'osm', got '%s'", root.Tag)
	}
	return &xmlDocument{doc: doc}, nil
}

// checkTopLevel requires exactly one root element and no text outside of it
func checkTopLevel(doc *etree.Document) error {
	roots := 0
	for _, token := range doc.Child {
		switch t := token.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return errors.Errorf("Malformed XML: text outside of root element: '%s'", strings.TrimSpace(t.Data))
			}
		}
	}
	switch roots {
	case 0:
		return errors.New("Empty XML document")
	case 1:
		return nil
	default:
		return errors.Errorf("Malformed XML: %d root elements", roots)
	}
}

func (data *xmlDocument) EachNode(fn func(node Element) error) error {
	for _, el := range data.doc.FindElements("//node") {
		if err := fn(xmlElement{el: el}); err != nil {
			return err
		}
	}
	return nil
}

func (data *xmlDocument) EachWay(match func(tags osm.Tags) bool, fn func(way WayElement) error) error {
	for _, el := range data.doc.FindElements("//way") {
		way := xmlWay{
			xmlElement: xmlElement{el: el},
			tags:       xmlTags(el),
		}
		if !match(way.tags) {
			continue
		}
		if err := fn(way); err != nil {
			return err
		}
	}
	return nil
}

type xmlElement struct {
	el *etree.Element
}

func (elem xmlElement) Attr(key string) (string, bool) {
	attr := elem.el.SelectAttr(key)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

type xmlWay struct {
	xmlElement
	tags osm.Tags
}

func (way xmlWay) Refs() []string {
	nds := way.el.SelectElements("nd")
	refs := make([]string, 0, len(nds))
	for _, nd := range nds {
		ref, ok := xmlElement{el: nd}.Attr("ref")
		if !ok {
			continue
		}
		refs = append(refs, strings.TrimSpace(ref))
	}
	return refs
}

func (way xmlWay) Tags() osm.Tags {
	return way.tags
}

// xmlTags collects <tag k="" v=""/> children preserving document order
func xmlTags(el *etree.Element) osm.Tags {
	children := el.SelectElements("tag")
	tags := make(osm.Tags, 0, len(children))
	for _, child := range children {
		key := child.SelectAttr("k")
		if key == nil {
			continue
		}
		tags = append(tags, osm.Tag{Key: key.Value, Value: strings.TrimSpace(child.SelectAttrValue("v", ""))})
	}
	return tags
}
