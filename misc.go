package sphincsplus

import (
	"fmt"
	goLog "log"
)

// Error is the package's error type: every Error wraps an optional inner
// cause, following the library's own errorImpl/errorf pair below. Per
// spec.md section 7, a failed signature verification is never reported
// through Error — Verify returns a plain bool.
type Error interface {
	error
	Inner() error
}

type errorImpl struct {
	msg   string
	inner error
}

func (err *errorImpl) Inner() error { return err.inner }

func (err *errorImpl) Error() string {
	if err.inner != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.inner.Error())
	}
	return err.msg
}

// errorf formats a new Error.
func errorf(format string, a ...interface{}) *errorImpl {
	return &errorImpl{msg: fmt.Sprintf(format, a...)}
}

// wrapErrorf formats a new Error that wraps another.
func wrapErrorf(err error, format string, a ...interface{}) *errorImpl {
	return &errorImpl{msg: fmt.Sprintf(format, a...), inner: err}
}

type dummyLogger struct{}
type stdlibLogger struct{}

func (logger *dummyLogger) Logf(format string, a ...interface{}) {}

func (logger *stdlibLogger) Logf(format string, a ...interface{}) {
	goLog.Printf(format, a...)
}

var log Logger = &dummyLogger{}

// Logger receives diagnostic messages from key generation. The package
// logs nothing by default; see EnableLogging and SetLogger.
type Logger interface {
	Logf(format string, a ...interface{})
}

// EnableLogging routes the package's diagnostic output to the standard
// log package. For more flexibility, use SetLogger.
func EnableLogging() {
	SetLogger(&stdlibLogger{})
}

// SetLogger installs logger as the destination for diagnostic output.
// Passing nil disables logging.
func SetLogger(logger Logger) {
	if logger == nil {
		log = &dummyLogger{}
		return
	}
	log = logger
}
