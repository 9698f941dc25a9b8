// Command algokit runs the algokit algorithms on numbers given as arguments
// or on YAML input documents.
//
// Usage:
//
//	algokit toposort  -f graph.yaml [--deps-first] [--roots 3,4]
//	algokit lis       10 9 2 5 3 7 101 18 [--indices]
//	algokit select    -k 2 5 3 1 6 9
//	algokit partition --scheme hoare --pivot 0 5 3 1 6 9
//	algokit rangesum  -f script.yaml
//	algokit dsu       -f unions.yaml
//
// Results go to stdout, logs to stderr. Pass "-f -" to read a document
// from stdin.
package main

import (
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one algokit invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	code := 0
	if err := root.Execute(); err != nil {
		a.log.Error("algokit failed", zap.Error(err))
		code = 1
	}
	_ = a.log.Sync()

	return code
}
