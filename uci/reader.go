package uci

import (
	"bufio"
	"io"
	"strings"
)

// ReadLoop scans lines from r, parses each into a Command, and hands it to
// handle, until r is exhausted or returns an error. It is meant to run in
// its own goroutine (the "Protocol Reader" actor), with handle forwarding
// parsed commands to the engine coordinator over a channel.
func ReadLoop(r io.Reader, handle func(Command)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		handle(Parse(line))
	}
	return scanner.Err()
}

// Parse turns one input line into a Command.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return UnknownCommand{Line: line}
	}

	switch fields[0] {
	case "uci":
		return UCICommand{}
	case "isready":
		return IsReadyCommand{}
	case "ucinewgame":
		return NewGameCommand{}
	case "stop":
		return StopCommand{}
	case "quit":
		return QuitCommand{}
	case "debug":
		return DebugCommand{On: len(fields) > 1 && fields[1] == "on"}
	case "position":
		return parsePosition(fields[1:])
	case "go":
		return parseGo(fields[1:])
	default:
		return UnknownCommand{Line: line}
	}
}

func parsePosition(args []string) Command {
	cmd := PositionCommand{}
	if len(args) == 0 {
		return cmd
	}

	i := 0
	switch args[0] {
	case "startpos":
		cmd.StartPos = true
		i = 1
	case "fen":
		i = 1
		fenFields := make([]string, 0, 6)
		for i < len(args) && args[i] != "moves" {
			fenFields = append(fenFields, args[i])
			i++
		}
		cmd.FEN = strings.Join(fenFields, " ")
	default:
		return cmd
	}

	if i < len(args) && args[i] == "moves" {
		cmd.Moves = append(cmd.Moves, args[i+1:]...)
	}
	return cmd
}

func parseGo(args []string) Command {
	cmd := GoCommand{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			cmd.Infinite = true
		case "movetime":
			if i+1 < len(args) {
				i++
				cmd.MoveTime = parseMillis(args[i])
				cmd.HasMoveTime = true
			}
		case "wtime":
			if i+1 < len(args) {
				i++
				cmd.WhiteTime = parseMillis(args[i])
			}
		case "btime":
			if i+1 < len(args) {
				i++
				cmd.BlackTime = parseMillis(args[i])
			}
		case "winc":
			if i+1 < len(args) {
				i++
				cmd.WhiteInc = parseMillis(args[i])
			}
		case "binc":
			if i+1 < len(args) {
				i++
				cmd.BlackInc = parseMillis(args[i])
			}
		case "movestogo":
			if i+1 < len(args) {
				i++
				if n, ok := parseInt(args[i]); ok {
					cmd.MovesToGo = n
					cmd.HasMovesToGo = true
				}
			}
		}
		// depth/nodes/mate and other search-shaping params are accepted by
		// the grammar but this engine doesn't bound search by them, so
		// they're parsed only insofar as skipping their value keeps the
		// rest of the line aligned; unrecognized tokens are themselves
		// just skipped.
	}
	return cmd
}
