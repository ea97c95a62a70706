package af

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// Error is a failed native call.
type Error struct {
	Code ErrorCode
	// Op is the operation that failed, empty for sentinel values.
	Op string
	// Message is the native last-error text, when the library provided one.
	Message string
}

func (e *Error) Error() string {
	s := "af: "
	if e.Op != "" {
		s += e.Op + ": "
	}
	s += native.Describe(native.Code(e.Code))
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

// Is matches any *Error with the same code, so errors.Is(err, ErrSize)
// holds for every size failure regardless of the operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel errors, one per native status code.
var (
	ErrNoMem           = &Error{Code: CodeNoMem}
	ErrDriver          = &Error{Code: CodeDriver}
	ErrRuntime         = &Error{Code: CodeRuntime}
	ErrInvalidArray    = &Error{Code: CodeInvalidArray}
	ErrArg             = &Error{Code: CodeArg}
	ErrSize            = &Error{Code: CodeSize}
	ErrType            = &Error{Code: CodeType}
	ErrDiffType        = &Error{Code: CodeDiffType}
	ErrBatch           = &Error{Code: CodeBatch}
	ErrDevice          = &Error{Code: CodeDevice}
	ErrNotSupported    = &Error{Code: CodeNotSupported}
	ErrNotConfigured   = &Error{Code: CodeNotConfigured}
	ErrNonFree         = &Error{Code: CodeNonFree}
	ErrNoDbl           = &Error{Code: CodeNoDbl}
	ErrNoGfx           = &Error{Code: CodeNoGfx}
	ErrNoHalf          = &Error{Code: CodeNoHalf}
	ErrLoadLib         = &Error{Code: CodeLoadLib}
	ErrLoadSym         = &Error{Code: CodeLoadSym}
	ErrArrBkndMismatch = &Error{Code: CodeArrBkndMismatch}
	ErrInternal        = &Error{Code: CodeInternal}
	ErrUnknown         = &Error{Code: CodeUnknown}
)

// ErrReleased is returned by operations on an Array, RandomEngine, Features
// or Window whose handle has already been released.
var ErrReleased = errors.New("af: handle released")

// ErrorCallback observes every failed native call with its code and the
// native last-error message.
type ErrorCallback func(code ErrorCode, msg string)

var handler atomic.Pointer[ErrorCallback]

// RegisterErrorHandler replaces the process-wide error callback. A nil cb
// restores the default, which logs at debug level.
func RegisterErrorHandler(cb ErrorCallback) {
	if cb == nil {
		handler.Store(nil)
		return
	}
	handler.Store(&cb)
}

func defaultErrorHandler(code ErrorCode, msg string) {
	log.Debug().Stringer("code", code).Str("msg", msg).Msg("arrayfire call failed")
}

func currentHandler() ErrorCallback {
	if cb := handler.Load(); cb != nil {
		return *cb
	}
	return defaultErrorHandler
}

// HandleError translates a native status into an error and reports it to
// the registered callback. It returns nil for CodeSuccess.
func HandleError(code ErrorCode) error {
	return check("", native.Code(code))
}

func check(op string, c native.Code) error {
	if c == native.Success {
		return nil
	}
	code := ErrorCode(c)
	msg := lib().LastError()
	errorsTotal.WithLabelValues(code.String()).Inc()
	currentHandler()(code, msg)
	return &Error{Code: code, Op: op, Message: msg}
}

// argError reports a failure detected before any native call. The callback
// is not invoked since the native library never saw the call.
func argError(code ErrorCode, op, format string, args ...any) error {
	return &Error{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

func lib() native.Lib { return native.Current() }
