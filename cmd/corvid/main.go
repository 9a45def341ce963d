// Command corvid is a UCI chess engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"corvid/engine"
	"corvid/uci"
)

func main() {
	name := pflag.String("name", "Corvid", "engine name reported to the UCI controller")
	author := pflag.String("author", "Corvid Authors", "engine author reported to the UCI controller")
	logPath := pflag.String("log", "", "path to a log file (disabled if empty)")
	verbose := pflag.Bool("verbose", false, "enable verbose (debug-level) logging")
	pflag.Parse()

	log, closeLog, err := setupLogger(*logPath, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corvid: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	writer := uci.NewWriter(os.Stdout)
	coordinator := engine.NewCoordinator(*name, *author, writer, log)

	commands := make(chan uci.Command, 16)
	go func() {
		if err := uci.ReadLoop(os.Stdin, func(c uci.Command) { commands <- c }); err != nil {
			log.Error(err, "protocol reader exited")
		}
		close(commands)
	}()

	coordinator.Run(commands)
}
