package asciimath

import (
	"fmt"
	"io"
)

// Reporter collects the failures of equation conversions. The converter only
// returns errors; where and how they are shown is up to the reporter.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter prints each failure on its own line and remembers whether
// any was seen since the last Reset.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
