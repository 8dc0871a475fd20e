// Package violations aggregates snippets that trip every relguard rule.
// Used by the fixture test to keep rule coverage honest.
package violations

import (
	"os"
	"runtime"
	"unsafe"
)

// Owns a closeable field without implementing io.Closer.
type LogSink struct {
	out  *os.File
	name string
}

func (l *LogSink) Write(p []byte) (int, error) {
	return l.out.Write(p)
}

// Close releases only one of the two owned files.
type FilePair struct {
	primary *os.File
	backup  *os.File
}

func (p *FilePair) Close() error {
	return p.primary.Close()
}

type tracked struct {
	file *os.File
}

// Register demonstrates the three finalizer failure modes: capturing the
// finalized object, registering an empty finalizer, and panicking during GC.
func Register(f *os.File) *tracked {
	t := &tracked{file: f}
	runtime.SetFinalizer(t, func(obj *tracked) {
		_ = t.file.Close()
	})
	runtime.SetFinalizer(f, func(*os.File) {})
	runtime.SetFinalizer(&t, func(**tracked) {
		panic("tracked file leaked")
	})
	return t
}

// Holds raw native handles without any release method.
type MappedRegion struct {
	base unsafe.Pointer
	fd   uintptr
	size uintptr
}

func Map(length int) *MappedRegion {
	return &MappedRegion{size: uintptr(length)}
}

// Six parameters and four results, both over the default thresholds.
func Transfer(src, dst string, bufSize, retries, timeout int, verbose bool) error {
	_ = src
	_ = dst
	_ = bufSize + retries + timeout
	_ = verbose
	return nil
}

func Stats() (int, int, int, int) {
	return 0, 0, 0, 0
}
