package testingx

import (
	"bytes"
	"errors"
	"sort"
	"sync"

	"go.eggybyte.com/egg/propgen/internal/projectfs"
)

// MemorySink is an in-memory projectfs.Sink. Only committed outputs are visible.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
	units map[string]string

	// CreateErr, when set, is returned by Create.
	CreateErr error
	// WriteErr, when set, is returned by every Write.
	WriteErr error
	// Aborted counts discarded outputs.
	Aborted int
}

// NewMemorySink creates an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		files: make(map[string][]byte),
		units: make(map[string]string),
	}
}

// Create implements projectfs.Sink.
func (s *MemorySink) Create(unit, path string) (projectfs.Output, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	return &memoryOutput{sink: s, unit: unit, path: path}, nil
}

// File returns the committed content at path.
func (s *MemorySink) File(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	return data, ok
}

// Paths returns every committed path, sorted.
func (s *MemorySink) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Unit returns the unit name committed at path.
func (s *MemorySink) Unit(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.units[path]
}

type memoryOutput struct {
	sink *MemorySink
	unit string
	path string
	buf  bytes.Buffer
	done bool
}

var errOutputClosed = errors.New("output already committed or aborted")

func (o *memoryOutput) Write(b []byte) (int, error) {
	if o.done {
		return 0, errOutputClosed
	}
	if o.sink.WriteErr != nil {
		return 0, o.sink.WriteErr
	}
	return o.buf.Write(b)
}

func (o *memoryOutput) Commit() error {
	if o.done {
		return errOutputClosed
	}
	o.done = true
	o.sink.mu.Lock()
	defer o.sink.mu.Unlock()
	o.sink.files[o.path] = append([]byte(nil), o.buf.Bytes()...)
	o.sink.units[o.path] = o.unit
	return nil
}

func (o *memoryOutput) Abort() error {
	if o.done {
		return nil
	}
	o.done = true
	o.sink.mu.Lock()
	defer o.sink.mu.Unlock()
	o.sink.Aborted++
	return nil
}

// Diagnostics records user-facing messages.
type Diagnostics struct {
	mu       sync.Mutex
	messages []string
}

// NewDiagnostics creates an empty recorder.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Error records msg.
func (d *Diagnostics) Error(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, msg)
}

// Messages returns every recorded message in order.
func (d *Diagnostics) Messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.messages...)
}
