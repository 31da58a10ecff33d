package osm2graph

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

var (
	ErrUnknownFormat = errors.New("unknown file format")
)

// Element is a single record of the source document with raw (not parsed) attribute values
type Element interface {
	Attr(key string) (string, bool)
}

// WayElement is a way record: ordered node references and tags
type WayElement interface {
	Element
	Refs() []string
	Tags() osm.Tags
}

// Document is parsed source which could be queried multiple times
type Document interface {
	// EachNode calls fn for every node in document order. Error returned by fn stops iteration
	EachNode(fn func(node Element) error) error
	// EachWay calls fn for every way which tags satisfy match, in document order
	EachWay(match func(tags osm.Tags) bool, fn func(way WayElement) error) error
}

type Format uint16

const (
	FORMAT_XML = Format(iota + 1)
	FORMAT_PBF
)

func (iotaIdx Format) String() string {
	return [...]string{"xml", "pbf"}[iotaIdx-1]
}

// FormatFromFilename guesses format by file extension
func FormatFromFilename(fileName string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".osm", ".xml":
		return FORMAT_XML, nil
	case ".pbf":
		return FORMAT_PBF, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "File extension '%s' for file '%s' is not handled yet", ext, fileName)
	}
}

// ReadDocument parses whole stream. Malformed input is reported as error
func ReadDocument(ctx context.Context, r io.Reader, format Format) (Document, error) {
	switch format {
	case FORMAT_XML:
		doc, err := readXML(r)
		if err != nil {
			return nil, err
		}
		return doc, nil
	case FORMAT_PBF:
		doc, err := readPBF(ctx, r, 4)
		if err != nil {
			return nil, errors.Wrap(err, "Scanner error")
		}
		return doc, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", format)
	}
}

// OpenDocument reads file with format guessed by its extension
func OpenDocument(ctx context.Context, fileName string) (Document, error) {
	format, err := FormatFromFilename(fileName)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()
	doc, err := ReadDocument(ctx, file, format)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't parse '%s'", fileName)
	}
	return doc, nil
}
