package driver

import (
	"fmt"
	"os"
	"strings"

	"glox/pkg/bytecode"
	"glox/pkg/compiler"
	"glox/pkg/vm"

	"github.com/charmbracelet/log"
)

// ChunkFileExt marks precompiled chunk files, produced with -o and run
// without recompiling.
const ChunkFileExt = ".gloxc"

// Driver holds the command-line options and orchestrates one run:
// read the source, compile it (or decode a precompiled chunk),
// optionally disassemble or emit the chunk, then interpret it.
type Driver struct {
	Help        bool   // Show help message
	Verbose     bool   // Enable verbose output
	Debug       bool   // Disassemble the compiled chunk before running
	NoColor     bool   // Disable colored output
	Interactive bool   // Start a REPL instead of running a file
	EmitFile    string // Write the compiled chunk here instead of running it
	SourceFile  string // Path to the source (or precompiled chunk) file
}

// Run executes one file end to end. Compile and runtime diagnostics
// are written to stderr as they occur; the returned error carries the
// failure status for the process exit code.
func (d *Driver) Run() error {
	log.Info("Processing file", "file", d.SourceFile)

	input, err := os.ReadFile(d.SourceFile)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	chunk, err := d.load(input)
	if err != nil {
		return err
	}

	if d.Debug {
		bytecode.NewDisassembler(os.Stderr).Chunk(chunk, d.SourceFile)
	}

	if d.EmitFile != "" {
		data, err := bytecode.Marshal(chunk)
		if err != nil {
			return fmt.Errorf("encode chunk: %w", err)
		}
		if err := os.WriteFile(d.EmitFile, data, 0o644); err != nil {
			return fmt.Errorf("write chunk: %w", err)
		}
		log.Info("Wrote compiled chunk", "file", d.EmitFile)
		return nil
	}

	return vm.New().Interpret(chunk)
}

// load either decodes a precompiled chunk or compiles source text
func (d *Driver) load(input []byte) (*bytecode.Chunk, error) {
	if strings.HasSuffix(d.SourceFile, ChunkFileExt) {
		return bytecode.Unmarshal(input)
	}
	return compiler.Compile(string(input))
}
