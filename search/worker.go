package search

// Worker runs the search actor loop: it waits for a StartCommand, runs
// Run against that position, and publishes Summary/BestMove events to
// report as it goes. While a search is running, it forwards StopCommand
// and QuitCommand into the search's own control channel so the in-flight
// Run can react to them. A QuitCommand ends the loop: at once between
// searches, or after the BestMove of a search it cancelled. A stray
// StopCommand with nothing running is ignored.
func Worker(commands <-chan Command, report func(Event)) {
	for cmd := range commands {
		switch c := cmd.(type) {
		case StartCommand:
			quit := false
			runOne(c, commands, func(e Event) {
				if bm, ok := e.(BestMove); ok && bm.Cause == Quit {
					quit = true
				}
				report(e)
			})
			if quit {
				return
			}
		case QuitCommand:
			return
		case StopCommand:
			// No search running; nothing to stop.
		}
	}
}

// runOne drives a single search to completion, relaying any StopCommand
// or QuitCommand that arrives on commands while it runs into the search's
// own control channel.
func runOne(start StartCommand, commands <-chan Command, report func(Event)) {
	control := make(chan Command, 1)
	done := make(chan Result, 1)

	go func() {
		done <- Run(start.Pos, start.Hist, start.Limits, control, func(sum Summary) {
			report(sum)
		})
	}()

	var result Result
	for result.Cause == None {
		select {
		case res := <-done:
			result = res
			if result.Cause == None {
				result.Cause = Stop
			}
		case cmd, ok := <-commands:
			if !ok {
				control <- QuitCommand{}
				result = <-done
				continue
			}
			switch cmd.(type) {
			case StopCommand:
				control <- StopCommand{}
			case QuitCommand:
				control <- QuitCommand{}
			case StartCommand:
				// A new search while one is in flight is not expected
				// from a well-behaved controller; ignore it.
			}
		}
	}

	report(BestMove{Move: result.Move, Cause: result.Cause})
}
