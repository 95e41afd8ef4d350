package prompt

import "errors"

// ErrAborted signals the user aborted input (e.g. Ctrl+C). Render loops do
// not retry after it; the error propagates to the caller.
var ErrAborted = errors.New("prompt: aborted")
