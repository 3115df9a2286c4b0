package config

import "errors"

// ErrConfig identifies a malformed configuration document: invalid YAML
// structure, an unknown storage reference, more than one default root, a
// non-path definition under paths, duplicate definitions sharing a
// root_name, a validate_with reference to an unknown path template, or a
// name collision between paths and strings.
var ErrConfig = errors.New("config: invalid configuration")
