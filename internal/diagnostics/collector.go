package diagnostics

import (
	"errors"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
)

type Diag struct {
	// Source the diagnostic belongs to, usually a file name.
	Source  string
	Stage   Stage
	Message string
}

type Collector struct {
	Diags []Diag

	mu  sync.Mutex
	out io.Writer
}

func NewWithWriter(out io.Writer) *Collector {
	return &Collector{
		Diags: nil,
		out:   out,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	collector.mu.Lock()
	defer collector.mu.Unlock()

	if collector.out != nil {
		red := color.New(color.FgRed, color.Bold)
		if diag.Source != "" {
			color.New(color.Bold).Fprintf(collector.out, "%s: ", diag.Source)
		}
		red.Fprint(collector.out, "error: ")
		io.WriteString(collector.out, diag.Message+"\n")
	}
	collector.Diags = append(collector.Diags, diag)
}

// Report saves err as a diagnostic tagged with the stage found in its chain.
func (collector *Collector) Report(source string, err error) {
	diag := Diag{Source: source, Message: err.Error()}
	var stageErr StageError
	if errors.As(err, &stageErr) {
		diag.Stage = stageErr.Stage()
	}
	collector.ReportAndSave(diag)
}

func (collector *Collector) HasErrors() bool {
	collector.mu.Lock()
	defer collector.mu.Unlock()
	return len(collector.Diags) > 0
}

// Err folds every saved diagnostic into a single error, nil if there are none.
func (collector *Collector) Err() error {
	collector.mu.Lock()
	defer collector.mu.Unlock()

	var result *multierror.Error
	for _, diag := range collector.Diags {
		msg := diag.Message
		if diag.Source != "" {
			msg = diag.Source + ": " + msg
		}
		result = multierror.Append(result, errors.New(msg))
	}
	return result.ErrorOrNil()
}
