package plog

import (
	"fmt"
	"os"
)

// Observer is notified of every sink failure during dispatch.
type Observer interface {
	OnSinkError(err *SinkError)
}

// ObserverFunc adapter.
type ObserverFunc func(*SinkError)

func (f ObserverFunc) OnSinkError(err *SinkError) { f(err) }

// fallbackObserver reports failures of loggers that have no observers, so a
// lost log line is never silent.
var fallbackObserver Observer = ObserverFunc(func(err *SinkError) {
	fmt.Fprintf(os.Stderr, "plog error: %v\n", err)
})
