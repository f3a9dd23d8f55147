// SPDX-License-Identifier: MIT
// Package: floorpath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Errors from cost.Options.Validate and core.NewGraph pass through
//     wrapped, so errors.Is(err, cost.ErrBadWalkSpeed) and
//     errors.Is(err, core.ErrDuplicateNode) keep working.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadCostFn indicates that the configured cost function produced a value
// that is negative, NaN or infinite for some pair of included nodes.
var ErrBadCostFn = errors.New("builder: cost function returned an invalid cost")

// builderErrorf wraps err with the given method context and a formatted
// detail, producing "<method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
