package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
)

// logEntry is one queued log line: level, message, and the key/value
// pairs logr collects for it.
type logEntry struct {
	timestamp time.Time
	level     int
	name      string
	msg       string
	keysVals  []interface{}
	err       error
}

// fileSink is a logr.LogSink that writes to a file through a buffered
// channel and a single background writer goroutine, so a slow disk never
// blocks the coordinator or worker actors that log through it.
type fileSink struct {
	file    *os.File
	queue   chan logEntry
	done    chan struct{}
	name    string
	verbose bool
}

// NewLogger opens (creating if needed) path for append and starts its
// writer goroutine. The returned closer must be called to flush and
// release the file.
func NewLogger(path string, verbose bool) (logr.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return logr.Logger{}, nil, err
	}

	sink := &fileSink{
		file:    f,
		queue:   make(chan logEntry, 256),
		done:    make(chan struct{}),
		verbose: verbose,
	}
	go sink.writer()

	closer := func() {
		close(sink.queue)
		<-sink.done
		f.Close()
	}
	return logr.New(sink), closer, nil
}

func (s *fileSink) Init(info logr.RuntimeInfo) {}

func (s *fileSink) Enabled(level int) bool {
	return s.verbose || level == 0
}

func (s *fileSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.enqueue(logEntry{timestamp: time.Now(), level: level, name: s.name, msg: msg, keysVals: keysAndValues})
}

func (s *fileSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.enqueue(logEntry{timestamp: time.Now(), name: s.name, msg: msg, keysVals: keysAndValues, err: err})
}

func (s *fileSink) enqueue(e logEntry) {
	select {
	case s.queue <- e:
	default:
		// Queue full: drop rather than block the caller. A missed log
		// line is preferable to a stalled search.
	}
}

func (s *fileSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	clone := *s
	return &clone
}

func (s *fileSink) WithName(name string) logr.LogSink {
	clone := *s
	if clone.name == "" {
		clone.name = name
	} else {
		clone.name = clone.name + "." + name
	}
	return &clone
}

func (s *fileSink) writer() {
	for e := range s.queue {
		line := fmt.Sprintf("%s [%s] %s", e.timestamp.Format("2006-01-02 15:04:05.000"), e.name, e.msg)
		if e.err != nil {
			line += " err=" + e.err.Error()
		}
		for i := 0; i+1 < len(e.keysVals); i += 2 {
			line += fmt.Sprintf(" %v=%v", e.keysVals[i], e.keysVals[i+1])
		}
		fmt.Fprintln(s.file, line)
	}
	close(s.done)
}

var _ logr.LogSink = (*fileSink)(nil)
