// SPDX-License-Identifier: MIT

package logarithm

import "errors"

// ErrDomain is returned by LogBase for arguments outside its domain.
var ErrDomain = errors.New("logarithm: argument outside domain")
