package osm2graph

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Converter struct {
	cfg        *Configuration
	logger     *zap.Logger
	geomFile   string
	geomFormat GeometryFormat
}

func (conv *Converter) String() string {
	highways := make([]string, len(conv.cfg.Highways))
	for i := range conv.cfg.Highways {
		highways[i] = conv.cfg.Highways[i].String()
	}
	return fmt.Sprintf(`
Converter parameters:
	entity: '%s'
	highways: '%s'
	default_maxspeed: %d
	geometry_file: '%s'
	`,
		conv.cfg.EntityName,
		strings.Join(highways, ","),
		conv.cfg.DefaultMaxSpeed,
		conv.geomFile,
	)
}

func NewConverter(options ...func(*Converter)) *Converter {
	conv := &Converter{
		cfg:        DefaultConfiguration(),
		logger:     zap.NewNop(),
		geomFormat: GEOM_WKT,
	}
	for _, option := range options {
		option(conv)
	}
	return conv
}

func WithConfiguration(cfg *Configuration) func(*Converter) {
	return func(conv *Converter) {
		if cfg != nil {
			conv.cfg = cfg
		}
	}
}

func WithLogger(logger *zap.Logger) func(*Converter) {
	return func(conv *Converter) {
		if logger != nil {
			conv.logger = logger
		}
	}
}

// WithGeometryExport enables writing of edges geometry by ConvertFile
func WithGeometryExport(fileName string, format GeometryFormat) func(*Converter) {
	return func(conv *Converter) {
		conv.geomFile = fileName
		conv.geomFormat = format
	}
}

// Stats is summary of conversion
type Stats struct {
	NodesParsed         int
	NodesSkipped        int
	UsedNodes           int64
	Ways                int // Recorded ways, including reversed ones
	WaysDiscarded       int
	WaysWithoutMaxSpeed int
	Edges               int64
}

// BuildGraph runs both passes over the document and assigns compact identifiers
func (conv *Converter) BuildGraph(doc Document) (*Graph, *Stats, error) {
	stats := &Stats{}
	nodes, err := conv.prepareNodes(doc, stats)
	if err != nil {
		return nil, nil, err
	}
	ways, err := conv.prepareWays(doc, nodes, stats)
	if err != nil {
		return nil, nil, err
	}
	stats.UsedNodes = compactIdentifiers(nodes)
	if stats.UsedNodes != int64(nodes.UsedCount()) {
		return nil, nil, errors.Errorf("Assigned %d compact identifiers, but %d nodes are used", stats.UsedNodes, nodes.UsedCount())
	}
	conv.logger.Info("Graph prepared",
		zap.Int64("nodes", stats.UsedNodes),
		zap.Int64("edges", stats.Edges),
		zap.Int("ways_without_max", stats.WaysWithoutMaxSpeed),
	)
	graph := &Graph{
		Nodes:           nodes,
		Ways:            ways,
		NodesNum:        stats.UsedNodes,
		EdgesNum:        stats.Edges,
		defaultMaxSpeed: conv.cfg.DefaultMaxSpeed,
	}
	return graph, stats, nil
}

// Convert builds graph from the document and writes graph and node mapping
func (conv *Converter) Convert(doc Document, graphOut, mappingOut io.Writer) (*Stats, error) {
	graph, stats, err := conv.BuildGraph(doc)
	if err != nil {
		return nil, err
	}
	err = graph.WriteGraph(graphOut)
	if err != nil {
		return nil, errors.Wrap(err, "Can't write graph")
	}
	err = graph.WriteMapping(mappingOut)
	if err != nil {
		return nil, errors.Wrap(err, "Can't write node mapping")
	}
	return stats, nil
}

// ConvertFile reads OSM file (*.osm, *.xml or *.pbf) and writes graph and mapping files.
// Output files are not created if input can't be parsed
func (conv *Converter) ConvertFile(ctx context.Context, fileName, graphFileName, mappingFileName string) (*Stats, error) {
	conv.logger.Info("Opening file", zap.String("file", fileName))
	doc, err := OpenDocument(ctx, fileName)
	if err != nil {
		return nil, err
	}
	graph, stats, err := conv.BuildGraph(doc)
	if err != nil {
		return nil, err
	}

	err = writeFile(graphFileName, graph.WriteGraph)
	if err != nil {
		return nil, errors.Wrap(err, "Can't write graph")
	}
	err = writeFile(mappingFileName, graph.WriteMapping)
	if err != nil {
		return nil, errors.Wrap(err, "Can't write node mapping")
	}
	if conv.geomFile != "" {
		err = writeFile(conv.geomFile, func(w io.Writer) error {
			return graph.WriteGeometry(w, conv.geomFormat)
		})
		if err != nil {
			return nil, errors.Wrap(err, "Can't write geometry")
		}
	}
	return stats, nil
}

func writeFile(fileName string, write func(w io.Writer) error) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()
	err = write(file)
	if err != nil {
		return err
	}
	return file.Close()
}
