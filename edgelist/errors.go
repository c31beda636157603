// SPDX-License-Identifier: MIT

package edgelist

import "github.com/pkg/errors"

var (
	// ErrMalformedLine reports an edge that is not two integers.
	ErrMalformedLine = errors.New("edgelist: malformed line")
	// ErrUnknownFormat reports an unsupported format name.
	ErrUnknownFormat = errors.New("edgelist: unknown format")
	// ErrTooManyVertices reports input beyond WithMaxVertices.
	ErrTooManyVertices = errors.New("edgelist: too many vertices")
)
