//go:build !386 && !arm && !mips && !mipsle

package lazyhandle

// DefaultLayout is the handle layout used when no explicit layout is given.
// On 64-bit platforms it is the wide Layout64.
var DefaultLayout = Layout64
