//go:build !unix

package backing

// NewMappedBuffer falls back to a plain heap allocation on platforms
// without an anonymous mmap facility wired up. Config.UseMmap is best
// effort, not a portability guarantee.
func NewMappedBuffer(size int) (Buffer, error) {
	return NewHeapBuffer(size)
}
