package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"glox/pkg/bytecode"
	"glox/pkg/color"
	"glox/pkg/compiler"
	"glox/pkg/vm"

	"github.com/chzyer/readline"
)

// Repl runs a read/eval/print loop. Each line is compiled as a full
// program and executed on one persistent VM, so globals survive across
// lines.
func (d *Driver) Repl() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	machine := vm.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}

		chunk, err := compiler.Compile(line)
		if err != nil {
			// diagnostics were already printed
			continue
		}

		if d.Debug {
			bytecode.NewDisassembler(os.Stderr).Chunk(chunk, "repl")
		}

		if err := machine.Interpret(chunk); err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		}
	}
}
