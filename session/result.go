package session

// ResultKind tags the outcome of a command
type ResultKind int

const (
	ResultNone    ResultKind = iota // the handler had nothing to report
	ResultSuccess                   // the command did what was asked
	ResultWarning                   // expected non-fatal outcome: no results, already applied, out of range
	ResultError                     // the user's input could not be used
)

const (
	warningMarker = "[Warning] "
	errorMarker   = "[ERROR] "
)

// Result is what a handler returns. Expected domain outcomes such as an empty search or a duplicate
// application are Results, never errors.
type Result struct {
	Kind    ResultKind
	Message string
}

func none() Result { return Result{Kind: ResultNone} }
func success(msg string) Result { return Result{Kind: ResultSuccess, Message: msg} }
func warning(msg string) Result { return Result{Kind: ResultWarning, Message: msg} }
func errorResult(msg string) Result { return Result{Kind: ResultError, Message: msg} }

// IsProblem reports whether the presenter should re-prompt
func (r Result) IsProblem() bool {
	return r.Kind == ResultWarning || r.Kind == ResultError
}

// String renders the message with its warning/error marker
func (r Result) String() string {
	switch r.Kind {
	case ResultWarning:
		return warningMarker + r.Message
	case ResultError:
		return errorMarker + r.Message
	default:
		return r.Message
	}
}

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultWarning:
		return "warning"
	case ResultError:
		return "error"
	default:
		return "none"
	}
}
