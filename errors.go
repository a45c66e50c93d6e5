package alfrusco

// WorkflowError is an error that knows how to present itself as an
// Alfred result row. Execute renders the error item instead of leaving
// the user staring at an empty list.
type WorkflowError interface {
	error
	ErrorItem() *Item
}

// DefaultError wraps any error into a presentable workflow error.
type DefaultError struct {
	Err error
}

func (e DefaultError) Error() string {
	return e.Err.Error()
}

func (e DefaultError) Unwrap() error {
	return e.Err
}

func (e DefaultError) ErrorItem() *Item {
	return NewItem("Error: " + e.Err.Error()).
		WithSubtitle("The workflow encountered an error. Check the logs for details.").
		Icon(Icon{Path: IconWarning}).
		Valid(false)
}

// errorItem converts err into a result row, preferring the error's own
// presentation when it provides one.
func errorItem(err error) *Item {
	var wfErr WorkflowError
	if as, ok := err.(WorkflowError); ok {
		wfErr = as
	} else {
		wfErr = DefaultError{Err: err}
	}
	return wfErr.ErrorItem()
}
