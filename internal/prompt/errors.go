package prompt

import "errors"

// ErrAborted is returned when the user interrupts a prompt (ctrl-C).
var ErrAborted = errors.New("prompt aborted")
