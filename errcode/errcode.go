package errcode

// Code is a stable, machine-readable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Board selection and table lookup.
	UnresolvedBoard   Code = "unresolved_board"
	UnknownBoard      Code = "unknown_board"
	IncompatibleBoard Code = "incompatible_board"
	FieldCollision    Code = "field_collision"
	InvalidProfile    Code = "invalid_profile"

	// Binding a plan to a platform.
	UnknownBus Code = "unknown_bus"
	UnknownPin Code = "unknown_pin"

	InvalidConfig Code = "invalid_config"
	Unsupported   Code = "unsupported"
	Busy          Code = "busy"
	Timeout       Code = "timeout"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.X) match a wrapped code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New builds an *E without a cause.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Wrap builds an *E around a cause.
func Wrap(c Code, op string, err error) *E { return &E{C: c, Op: op, Err: err} }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		if inner := u.Unwrap(); inner != nil {
			return Of(inner)
		}
	}
	return Error
}
