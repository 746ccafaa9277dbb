// Command filterspiritc is a thin demonstration binary over
// pkg/filterspirit. Argument parsing and file I/O are not a feature
// surface of the module itself; this wraps the pipeline the same way
// the teacher's cmd/dungeongen wraps pkg/dungeon.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/filter-spirit/filterspirit/pkg/filterspirit"
	"github.com/filter-spirit/filterspirit/pkg/market"
)

const version = "0.1.0"

var (
	sourcePath = flag.String("source", "", "Path to a .filter (SF) source file (required)")
	configPath = flag.String("config", "", "Path to YAML compiler settings (optional)")
	outputPath = flag.String("output", "", "Output path for the serialized filter (default: stdout)")
	versionF   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("filterspiritc version %s\n", version)
		os.Exit(0)
	}

	if *sourcePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -source flag is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	src, err := os.ReadFile(*sourcePath)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	cfg := filterspirit.Config{}
	if *configPath != "" {
		loaded, err := filterspirit.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = *loaded
	}

	compiled, err := filterspirit.CompileSF(string(src), cfg)
	if err != nil {
		return fmt.Errorf("compiling: %w", err)
	}

	if len(compiled.Diags.Messages) > 0 {
		fmt.Fprint(os.Stderr, compiled.Diags.Render(*sourcePath, string(src)))
	}
	if compiled.Diags.Fatal(cfg.TreatWarningsAsErrors) {
		return fmt.Errorf("compilation failed with %d diagnostic(s)", len(compiled.Diags.Messages))
	}

	// No market data source is wired in this demonstration binary; an
	// empty snapshot still binds filters that carry no autogen blocks.
	flat, err := filterspirit.Bind(compiled, market.Snapshot{})
	if err != nil {
		return fmt.Errorf("binding: %w", err)
	}

	out := filterspirit.Serialize(flat, cfg)

	if *outputPath == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(*outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("Wrote %s\n", *outputPath)
	return nil
}
