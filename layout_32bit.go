//go:build 386 || arm || mips || mipsle

package lazyhandle

// DefaultLayout is the handle layout used when no explicit layout is given.
// On 32-bit platforms the wide layout degrades to the narrow Layout32.
var DefaultLayout = Layout32
