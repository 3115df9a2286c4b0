package keys

import "errors"

// ErrInvalidOption indicates a key was constructed with an invalid
// option value (for example, a malformed filter regexp or an empty
// choices list).
var ErrInvalidOption = errors.New("keys: invalid option")
