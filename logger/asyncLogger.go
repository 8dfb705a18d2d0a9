package logger

import (
	"errors"
	"log"
	"sync"

	"github.com/telartis/picqer-ontime/types"
)

// Sink stores audit entries.
type Sink interface {
	Write(entry types.LogEntry) error
	Close() error
}

// AsyncLogger queues audit entries and writes them from a single worker
// goroutine started with ProcessLog.
type AsyncLogger struct {
	sinks   []Sink
	redact  func(string) string
	channel chan types.LogEntry
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewAsyncLogger(redact func(string) string, sinks ...Sink) *AsyncLogger {
	if redact == nil {
		redact = func(s string) string { return s }
	}
	return &AsyncLogger{
		sinks:   sinks,
		redact:  redact,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
		done:    make(chan struct{}),
	}
}

func (logger *AsyncLogger) ProcessLog() {
	defer close(logger.done)
	log.Println("Starting asynchronous audit logger...")

	for logEntry := range logger.channel {
		for _, sink := range logger.sinks {
			if err := sink.Write(logEntry); err != nil {
				log.Printf("Failed to write audit entry %s %s: %v", logEntry.Method, logEntry.URL, err)
			}
		}
	}
}

// Log redacts entry and pushes it into the channel. Entries logged after
// Close are dropped.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	entry.URL = logger.redact(entry.URL)
	entry.RequestBody = logger.redact(entry.RequestBody)
	entry.ResponseBody = logger.redact(entry.ResponseBody)
	entry.CarrierRequest = logger.redact(entry.CarrierRequest)
	entry.CarrierResponse = logger.redact(entry.CarrierResponse)

	logger.mu.RLock()
	defer logger.mu.RUnlock()
	if logger.closed {
		return
	}
	logger.channel <- entry
}

// Close drains queued entries, waits for ProcessLog to return and closes
// every sink.
func (logger *AsyncLogger) Close() error {
	logger.mu.Lock()
	if logger.closed {
		logger.mu.Unlock()
		return nil
	}
	logger.closed = true
	close(logger.channel)
	logger.mu.Unlock()

	<-logger.done

	var errs []error
	for _, sink := range logger.sinks {
		errs = append(errs, sink.Close())
	}
	return errors.Join(errs...)
}
