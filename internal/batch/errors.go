package batch

import "fmt"

// NotFoundError reports a target path that does not exist. It is recorded on
// the file's result and never aborts the batch.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("file not found: %s", e.Path) }
func (e *NotFoundError) Unwrap() error { return e.Err }

// DecodeError reports file content that is not valid UTF-8 text.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: content is not valid UTF-8 text", e.Path)
}

// WriteError reports a failed write-back. The in-memory rewrite is discarded
// and the file keeps its previous content; writes go through a temp file and
// rename so a failure never leaves a partial write behind.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }
