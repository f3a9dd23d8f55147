package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floorpath/core"
)

// DefaultLevel is assumed for stations that omit `level`.
const DefaultLevel = 1

// document is the on-disk layout:
//
//	stations:
//	  - id: 1
//	    name: Bench Press
//	    level: 2
//	    x: 4.5
//	    y: 10
//	    occupied: false
//	    tags: [chest]
type document struct {
	Stations []station `yaml:"stations"`
}

type station struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Level    *int     `yaml:"level,omitempty"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Occupied bool     `yaml:"occupied"`
	Tags     []string `yaml:"tags,omitempty"`
}

func (s station) node() core.Node {
	level := DefaultLevel
	if s.Level != nil {
		level = *s.Level
	}

	return core.Node{
		ID:       core.NodeID(s.ID),
		Name:     s.Name,
		Level:    level,
		X:        s.X,
		Y:        s.Y,
		Occupied: s.Occupied,
		Tags:     s.Tags,
	}
}

// Decode reads a station document from r. Unknown keys are rejected and
// duplicate IDs yield core.ErrDuplicateNode. An empty document is valid and
// yields no stations.
func Decode(r io.Reader) ([]core.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	seen := make(map[core.NodeID]struct{}, len(doc.Stations))
	out := make([]core.Node, 0, len(doc.Stations))
	for _, s := range doc.Stations {
		n := s.node()
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("Decode: %w: %d", core.ErrDuplicateNode, n.ID)
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}

	return out, nil
}

// Encode writes nodes to w in the layout Decode reads.
func Encode(w io.Writer, nodes []core.Node) error {
	doc := document{Stations: make([]station, 0, len(nodes))}
	for _, n := range nodes {
		level := n.Level
		doc.Stations = append(doc.Stations, station{
			ID:       int(n.ID),
			Name:     n.Name,
			Level:    &level,
			X:        n.X,
			Y:        n.Y,
			Occupied: n.Occupied,
			Tags:     n.Tags,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// LoadFile decodes the station document at path.
func LoadFile(path string) ([]core.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	nodes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return nodes, nil
}

// File is a Source that re-reads a YAML document on every snapshot, so
// edits to the file show up on the next query.
type File struct {
	Path string
}

// NewFile returns a File source for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Snapshot implements Source.
func (f *File) Snapshot(ctx context.Context) ([]core.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return LoadFile(f.Path)
}
