// Package command exposes the operations a host UI dispatches to: DigFile
// digests one file and returns the rendered HTML block, Multiply returns
// the product of two numbers. Both are plain synchronous functions; the
// host adapts them to its own calling convention.
package command
