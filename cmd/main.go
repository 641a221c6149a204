package main

import (
	"flag"
	"fmt"
	"glox/internal/driver"
	"glox/internal/logger"
	"glox/pkg/color"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the glox interpreter.
func main() {
	options := driver.Driver{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.Debug, "d", false, "Disassemble compiled chunks before running")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Interactive, "i", false, "Interactive prompt")
	flag.StringVar(&options.EmitFile, "o", "", "Compile only, writing the chunk to this file")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.Enable(false)
	}

	if len(args) == 0 || options.Interactive {
		if err := options.Repl(); err != nil {
			log.Fatal("REPL failed", "error", err)
		}
		return
	}

	options.SourceFile = args[0]

	if err := options.Run(); err != nil {
		log.Fatal("Run failed", "error", err)
	}
}
