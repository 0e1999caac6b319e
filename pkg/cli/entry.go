package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/revive/internal/codec"
	"github.com/funvibe/revive/internal/registry"
	"github.com/funvibe/revive/internal/reviver"
)

const usage = `Usage: revive -registry <metadata.db> [tree.yaml ...]

Revives serialized constant trees against a type registry and prints the
resulting instances. Reads from stdin when no tree files are given.`

// Run executes the revive command line. Returns the process exit code.
func Run(args []string) int {
	var registryPath string
	var files []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "-help", "--help":
			fmt.Println(usage)
			return 0
		case "-registry", "--registry":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -registry needs a file argument")
				return 1
			}
			i++
			registryPath = args[i]
		default:
			if strings.HasPrefix(args[i], "-") {
				fmt.Fprintf(os.Stderr, "Error: unknown flag %s\n", args[i])
				return 1
			}
			files = append(files, args[i])
		}
	}

	if registryPath == "" {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	reg, err := registry.LoadSQLite(registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading registry: %s\n", err)
		return 1
	}

	rev := reviver.New(reg)

	if len(files) == 0 {
		return reviveStream(rev, os.Stdin, "<stdin>")
	}

	code := 0
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}
		if c := reviveStream(rev, f, path); c != 0 {
			code = c
		}
		f.Close()
	}
	return code
}

func reviveStream(rev *reviver.Reviver, r io.Reader, name string) int {
	values, err := codec.DecodeAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errorText(fmt.Sprintf("%s: %s", name, err)))
		return 1
	}

	code := 0
	for i, v := range values {
		obj, err := rev.Revive(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errorText(fmt.Sprintf("%s: document %d: %s", name, i+1, err)))
			code = 1
			continue
		}
		fmt.Println(obj.Inspect())
	}
	return code
}

// useColor follows the NO_COLOR convention (https://no-color.org/) and
// only emits escapes when stderr is a terminal.
func useColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func errorText(s string) string {
	if !useColor() {
		return s
	}
	return "\033[31m" + s + "\033[39m"
}
