package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs algokit with args and stdin, returning captured streams and
// the exit code.
func execute(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), code
}

// TestToposort_Stdin sorts the reference chain read from stdin.
func TestToposort_Stdin(t *testing.T) {
	out, _, code := execute(t, "nodes: 3\nedges: [[1, 0], [2, 1]]\n", "toposort", "-f", "-")
	assert.Equal(t, 0, code)
	assert.Equal(t, "2 1 0\n", out)
}

// TestToposort_NamesDepsFirst prints labels in build order from a file.
func TestToposort_NamesDepsFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	doc := `
names: [core, lib, util, app]
edges:
  - [1, 0]
  - [2, 0]
  - [3, 1]
  - [3, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, stderr, code := execute(t, "", "toposort", "--deps-first", "-f", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "core lib util app\n", out)

	out, _, code = execute(t, "", "toposort", "-f", path, "--roots", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "lib core\n", out)
}

// TestToposort_Cycle exits 1 and logs the cycle walk.
func TestToposort_Cycle(t *testing.T) {
	doc := "nodes: 3\nedges: [[0, 2], [1, 0], [2, 1]]\n"
	out, stderr, code := execute(t, doc, "toposort", "-f", "-")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "cycle detected")
	assert.Contains(t, stderr, "0 -> 2 -> 1 -> 0")

	// the cycle lookup honours --roots, like the sort itself
	doc = "nodes: 3\nedges: [[1, 2], [2, 1]]\n"
	out, stderr, code = execute(t, doc, "toposort", "-f", "-", "--roots", "1")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "1 -> 2 -> 1")

	out, _, code = execute(t, doc, "toposort", "-f", "-", "--roots", "0")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0\n", out)
}

// TestToposort_BadDocuments covers decoding and validation failures.
func TestToposort_BadDocuments(t *testing.T) {
	cases := map[string]string{
		"unknown field": "nodes: 2\nedge: [[0, 1]]\n",
		"out of range":  "nodes: 2\nedges: [[0, 5]]\n",
		"name mismatch": "names: [a, b]\nnodes: 3\n",
		"empty":         "",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, stderr, code := execute(t, doc, "toposort", "-f", "-")
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "algokit failed")
		})
	}

	_, stderr, code := execute(t, "", "toposort", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.yaml")

	_, stderr, code = execute(t, "", "toposort")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `required flag(s) \"file\" not set`)
}

// TestLis prints the length and, on request, one subsequence.
func TestLis(t *testing.T) {
	out, _, code := execute(t, "", "lis", "10", "9", "2", "5", "3", "7", "101", "18")
	assert.Equal(t, 0, code)
	assert.Equal(t, "4\n", out)

	out, _, code = execute(t, "", "lis", "--indices", "0", "1", "0", "3", "2", "3")
	assert.Equal(t, 0, code)
	assert.Equal(t, "4\n0 1 2 3\n", out)

	_, _, code = execute(t, "", "lis", "1", "two")
	assert.Equal(t, 1, code)
}

// TestSelect prints the k-th smallest value.
func TestSelect(t *testing.T) {
	out, _, code := execute(t, "", "select", "-k", "2", "5", "3", "1", "6", "9")
	assert.Equal(t, 0, code)
	assert.Equal(t, "5\n", out)

	out, _, code = execute(t, "", "select", "--rank", "0", "2.5", "0.75", "10")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0.75\n", out)

	_, stderr, code := execute(t, "", "select", "-k", "5", "1", "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "k 5 out of range")
}

// TestPartition prints the split index and the rearranged numbers.
func TestPartition(t *testing.T) {
	out, _, code := execute(t, "", "partition", "--scheme", "hoare", "--pivot", "0", "5", "3", "1", "6", "9")
	assert.Equal(t, 0, code)
	assert.Equal(t, "2\n1 3 5 6 9\n", out)

	out, _, code = execute(t, "", "partition", "--pivot", "0", "5", "3", "1", "6", "9")
	assert.Equal(t, 0, code)
	assert.Equal(t, "2\n3 1 5 6 9\n", out)

	_, stderr, code := execute(t, "", "partition", "--scheme", "quick", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown scheme \"quick\"`)

	_, _, code = execute(t, "", "partition", "--pivot", "3", "1", "2")
	assert.Equal(t, 1, code)
}

// TestRangesum replays the reference update script.
func TestRangesum(t *testing.T) {
	doc := `
values: ["5", "3", "1", "6", "9"]
ops:
  - {op: sum, left: 0, right: 4}
  - {op: update, index: 2, value: "2"}
  - {op: sum, left: 0, right: 4}
  - {op: sum, left: 2, right: 4}
  - {op: get, index: 2}
  - {op: total}
`
	out, stderr, code := execute(t, doc, "rangesum", "-f", "-")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "24\n25\n17\n2\n25\n", out)
}

// TestRangesum_Errors rejects bad scripts before touching the tree.
func TestRangesum_Errors(t *testing.T) {
	cases := map[string]string{
		"bad value":   `values: ["1", "x"]`,
		"bad op":      "values: [\"1\"]\nops: [{op: multiply}]\n",
		"bad range":   "values: [\"1\"]\nops: [{op: sum, left: 0, right: 1}]\n",
		"bad index":   "values: [\"1\"]\nops: [{op: update, index: 4, value: \"1\"}]\n",
		"bad update":  "values: [\"1\"]\nops: [{op: update, index: 0, value: \"one\"}]\n",
		"bad get":     "values: [\"1\"]\nops: [{op: get, index: -1}]\n",
		"empty total": "values: []\nops: [{op: sum, left: 0, right: 0}]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, code := execute(t, doc, "rangesum", "-f", "-")
			assert.Equal(t, 1, code)
		})
	}
}

// TestDSU reports connectivity, set count and groups.
func TestDSU(t *testing.T) {
	doc := `
size: 5
unions: [[0, 1], [3, 4], [1, 0]]
queries: [[0, 1], [1, 3]]
`
	out, stderr, code := execute(t, doc, "dsu", "-f", "-")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "0 1 connected\n1 3 disjoint\nsets: 3\n[[0 1] [2] [3 4]]\n", out)

	_, stderr, code = execute(t, "size: 2\nqueries: [[0, 2]]\n", "dsu", "-f", "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "queries[0]: element 2 out of range")
}

// TestLogging_JSONDebug emits structured debug records on stderr.
func TestLogging_JSONDebug(t *testing.T) {
	_, stderr, code := execute(t, "size: 2\nunions: [[0, 1]]\n",
		"--log-level", "debug", "--log-format", "json", "dsu", "-f", "-")
	require.Equal(t, 0, code)

	line := strings.TrimSpace(strings.Split(stderr, "\n")[0])
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
	assert.Equal(t, "unions applied", rec["msg"])
	assert.Equal(t, "dsu", rec["command"])
	assert.EqualValues(t, 1, rec["merged"])
}

// TestLogging_BadFlags fails fast on unknown log settings.
func TestLogging_BadFlags(t *testing.T) {
	_, stderr, code := execute(t, "", "--log-level", "loud", "lis", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "log level")

	_, stderr, code = execute(t, "", "--log-format", "xml", "lis", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `log format \"xml\"`)
}
