package command

import (
	"fmt"

	"github.com/byte4ever/multidigest/digester"
	"github.com/byte4ever/multidigest/render"
)

// DigFile digests the file at path and returns the HTML block the UI
// displays. Errors are returned to the host, never raised as panics.
func DigFile(path string) (string, error) {
	const errCtx = "digesting file"

	re, err := digester.Compute(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return render.HTML(re), nil
}

// Multiply returns a*b.
func Multiply(a, b float32) float32 {
	return a * b
}
