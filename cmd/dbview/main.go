package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/dbview/terminal"
)

var debugFlag = flag.Bool("debug", false, "Write debug log to logs/")

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	scr := terminal.New()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			scr.EmergencyRestore()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDBVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := scr.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer scr.Fini()

	scr.EnableMouse(true)
	log.Printf("dbview started")

	br := newBrowser(sampleTable())
	br.run(scr)

	log.Printf("dbview exiting")
}
