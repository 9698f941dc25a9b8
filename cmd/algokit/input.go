package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algokit/rangesum"
	"github.com/katalvlaran/algokit/toposort"
)

// errEmptyDocument is returned when an input document has no YAML content.
var errEmptyDocument = errors.New("empty input document")

// graphDoc is the toposort input.
//
//	names: [core, lib, app]   # optional labels, one per node
//	nodes: 3                  # defaults to len(names)
//	edges: [[1, 0], [2, 1]]   # [from, to]: from depends on to
type graphDoc struct {
	Names []string `yaml:"names"`
	Nodes int      `yaml:"nodes"`
	Edges [][2]int `yaml:"edges"`
}

// graph validates the document and builds the adjacency list.
func (d graphDoc) graph() (toposort.Graph, error) {
	n := d.Nodes
	if len(d.Names) > 0 {
		if n != 0 && n != len(d.Names) {
			return nil, fmt.Errorf("nodes is %d but %d names given", n, len(d.Names))
		}
		n = len(d.Names)
	}

	return toposort.FromEdges(n, d.Edges)
}

// label returns the display name of node id.
func (d graphDoc) label(id int) string {
	if id < len(d.Names) {
		return d.Names[id]
	}

	return fmt.Sprint(id)
}

// rangeOp is one step of a rangesum script.
type rangeOp struct {
	Op    string `yaml:"op"` // update | sum | get | total
	Index int    `yaml:"index"`
	Value string `yaml:"value"`
	Left  int    `yaml:"left"`
	Right int    `yaml:"right"`
}

// rangeDoc is the rangesum input: initial values as decimal strings and a
// script of operations applied in order.
type rangeDoc struct {
	Values []string  `yaml:"values"`
	Ops    []rangeOp `yaml:"ops"`
}

// tree parses the initial values into a decimal Tree.
func (d rangeDoc) tree() (*rangesum.Tree[decimal.Decimal], error) {
	vals, err := rangesum.ParseDecimals(d.Values)
	if err != nil {
		return nil, err
	}

	return rangesum.NewDecimal(vals), nil
}

// dsuDoc is the dsu input.
type dsuDoc struct {
	Size    int      `yaml:"size"`
	Unions  [][2]int `yaml:"unions"`
	Queries [][2]int `yaml:"queries"`
}

// validate checks every element index against Size.
func (d dsuDoc) validate() error {
	if d.Size < 0 {
		return fmt.Errorf("size %d is negative", d.Size)
	}
	for _, group := range []struct {
		name  string
		pairs [][2]int
	}{{"unions", d.Unions}, {"queries", d.Queries}} {
		for i, p := range group.pairs {
			for _, x := range p {
				if x < 0 || x >= d.Size {
					return fmt.Errorf("%s[%d]: element %d out of range [0, %d)", group.name, i, x, d.Size)
				}
			}
		}
	}

	return nil
}

// openInput opens path for reading; "-" selects stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(path)
}

// decodeYAML strictly decodes a single document from r into v: unknown
// fields are errors.
func decodeYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyDocument
		}

		return err
	}

	return nil
}

// loadDocument opens path and decodes it into v.
func loadDocument(path string, stdin io.Reader, v any) error {
	f, err := openInput(path, stdin)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = decodeYAML(f, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

// parseNumbers converts positional arguments to decimals.
func parseNumbers(args []string) ([]decimal.Decimal, error) {
	if len(args) == 0 {
		return nil, errors.New("no numbers given")
	}

	return rangesum.ParseDecimals(args)
}

// byValue orders decimals numerically.
func byValue(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
