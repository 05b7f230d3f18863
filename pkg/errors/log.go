package errors

import (
	"io"
	"log"
	"os"
)

// LogHandler is an ErrorHandler that logs through the standard logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means stderr.
	Out io.Writer
}

func (h *LogHandler) logger() *log.Logger {
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	return log.New(out, "", log.LstdFlags)
}

// HandleError logs a ControllerError.
func (h *LogHandler) HandleError(err *ControllerError) {
	if err == nil {
		return
	}
	l := h.logger()
	if h.Verbose {
		l.Printf("[marquee error] %s", err.Error())
		if err.StackTrace != "" {
			l.Printf("Stack trace:\n%s", err.StackTrace)
		}
		return
	}
	l.Printf("[marquee error] %s: %v", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Printf("[marquee panic] %s: %v", err.Op, err.Value)
	} else {
		l.Printf("[marquee panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}
