// Package notify defines the boundary through which the settings console
// surfaces terminal outcomes to the operator. The console guarantees exactly
// one notification per fetch failure, save failure, and save success;
// rendering is the sink's business.
package notify

import (
	"fmt"
	"io"

	"watchtune/internal/constants"
)

// Sink receives success/failure signals to surface to the operator.
type Sink interface {
	NotifyError(ctx constants.NotifyContext, message string)
	NotifySuccess(ctx constants.NotifyContext, message string)
}

// WriterSink renders notifications as single lines on a writer. Used by the
// CLI commands, where a status banner makes no sense.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) NotifyError(ctx constants.NotifyContext, message string) {
	fmt.Fprintf(s.W, "[%s] %s\n", constants.LabelError, message)
}

func (s WriterSink) NotifySuccess(ctx constants.NotifyContext, message string) {
	fmt.Fprintf(s.W, "[%s] %s\n", constants.LabelSuccess, message)
}

// NopSink discards every notification.
type NopSink struct{}

func (NopSink) NotifyError(constants.NotifyContext, string)   {}
func (NopSink) NotifySuccess(constants.NotifyContext, string) {}

// Multi fans a notification out to several sinks.
type Multi []Sink

func (m Multi) NotifyError(ctx constants.NotifyContext, message string) {
	for _, s := range m {
		s.NotifyError(ctx, message)
	}
}

func (m Multi) NotifySuccess(ctx constants.NotifyContext, message string) {
	for _, s := range m {
		s.NotifySuccess(ctx, message)
	}
}
