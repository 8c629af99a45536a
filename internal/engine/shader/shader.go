// Package shader compiles vertex/fragment stage pairs into OpenGL programs
// and uploads uniforms to them by name.
package shader

import (
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Program owns one linked driver program.
//
// A Program is built by New, NewFromFS or NewFromSource and is either linked
// or failed once construction returns. It must only be used from the thread
// that owns the GL context, and must be released with Delete; there is no
// finalizer because the driver cannot be called from the finalizer goroutine.
// Pass it around as *Program.
type Program struct {
	_ noCopy

	drv    Driver
	log    *zap.Logger
	name   string
	handle uint32
	state  State
	err    error

	missing uint64
	warned  map[string]struct{}
}

// Option configures a Program.
type Option func(*Program)

// WithLogger sets the logger used for link and missing-uniform diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(p *Program) {
		if l != nil {
			p.log = l
		}
	}
}

// WithName labels the program in log output.
func WithName(name string) Option {
	return func(p *Program) { p.name = name }
}

// New reads the two stage sources from disk and builds a program from them.
// Neither stage is compiled if either file cannot be read.
//
// The returned Program is never nil; on error it is in StateFailed.
func New(drv Driver, vertexPath, fragmentPath string, opts ...Option) (*Program, error) {
	p := newProgram(drv, opts)
	if p.name == "" {
		p.name = vertexPath + "+" + fragmentPath
	}

	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return p, p.fail(&SourceReadError{Stage: StageVertex, Path: vertexPath, Err: err})
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return p, p.fail(&SourceReadError{Stage: StageFragment, Path: fragmentPath, Err: err})
	}

	return p, p.build(string(vertexSrc), string(fragmentSrc))
}

// NewFromFS is New for sources held in a file system such as an embed.FS.
func NewFromFS(drv Driver, fsys fs.FS, vertexPath, fragmentPath string, opts ...Option) (*Program, error) {
	p := newProgram(drv, opts)
	if p.name == "" {
		p.name = vertexPath + "+" + fragmentPath
	}

	vertexSrc, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return p, p.fail(&SourceReadError{Stage: StageVertex, Path: vertexPath, Err: err})
	}
	fragmentSrc, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return p, p.fail(&SourceReadError{Stage: StageFragment, Path: fragmentPath, Err: err})
	}

	return p, p.build(string(vertexSrc), string(fragmentSrc))
}

// NewFromSource compiles and links the given stage sources. The text is
// handed to the driver unchanged.
//
// The returned Program is never nil; on error it is in StateFailed.
func NewFromSource(drv Driver, vertexSrc, fragmentSrc string, opts ...Option) (*Program, error) {
	p := newProgram(drv, opts)
	return p, p.build(vertexSrc, fragmentSrc)
}

func newProgram(drv Driver, opts []Option) *Program {
	p := &Program{
		drv:    drv,
		log:    zap.NewNop(),
		state:  StateUninitialized,
		warned: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// build compiles both stages and links them. Stage objects are released on
// every path.
func (p *Program) build(vertexSrc, fragmentSrc string) error {
	p.state = StateCompiling

	vert, err := p.compile(StageVertex, vertexSrc)
	if err != nil {
		return p.fail(err)
	}
	defer p.drv.DeleteShader(vert)

	frag, err := p.compile(StageFragment, fragmentSrc)
	if err != nil {
		return p.fail(err)
	}
	defer p.drv.DeleteShader(frag)

	program := p.drv.CreateProgram()
	if program == 0 {
		return p.fail(&LinkError{Log: "driver could not create a program object"})
	}
	p.drv.AttachShader(program, vert)
	p.drv.AttachShader(program, frag)
	p.drv.LinkProgram(program)

	linked := p.drv.ProgramLinked(program)
	var log string
	if !linked {
		log = p.drv.ProgramInfoLog(program)
	}
	p.drv.DetachShader(program, vert)
	p.drv.DetachShader(program, frag)

	if !linked {
		p.drv.DeleteProgram(program)
		return p.fail(&LinkError{Log: log})
	}

	p.handle = program
	p.state = StateLinked
	p.log.Debug("shader program linked",
		zap.String("name", p.name),
		zap.Uint32("program", program),
	)
	return nil
}

// compile compiles a single stage. A stage that fails is deleted before
// returning.
func (p *Program) compile(stage Stage, source string) (uint32, error) {
	sh := p.drv.CreateShader(stage)
	if sh == 0 {
		return 0, &CompileError{Stage: stage, Log: "driver could not create a shader object"}
	}
	p.drv.ShaderSource(sh, source)
	p.drv.CompileShader(sh)

	if !p.drv.ShaderCompiled(sh) {
		log := p.drv.ShaderInfoLog(sh)
		p.drv.DeleteShader(sh)
		if log == "" {
			log = "no driver log"
		}
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

func (p *Program) fail(err error) error {
	p.handle = 0
	p.state = StateFailed
	p.err = err
	return err
}

// Handle returns the driver program handle, or 0 if the program is not linked.
func (p *Program) Handle() uint32 { return p.handle }

// State returns the lifecycle state.
func (p *Program) State() State { return p.state }

// Err returns the error that left the program failed, or nil.
func (p *Program) Err() error { return p.err }

// Name returns the label used in logs.
func (p *Program) Name() string { return p.name }

// Linked reports whether the program can be used for rendering.
func (p *Program) Linked() bool {
	return p.state == StateLinked && p.handle != 0
}

// Use makes the program the active pipeline for subsequent draw calls and
// uniform uploads on the current context.
func (p *Program) Use() error {
	if !p.Linked() {
		return fmt.Errorf("use %q: %w", p.name, ErrInvalidProgram)
	}
	p.drv.UseProgram(p.handle)
	return nil
}

// Delete releases the driver program. It is safe to call more than once and
// on a failed program.
func (p *Program) Delete() {
	if p.handle == 0 {
		return
	}
	p.drv.DeleteProgram(p.handle)
	p.log.Debug("shader program deleted",
		zap.String("name", p.name),
		zap.Uint32("program", p.handle),
	)
	p.handle = 0
	p.state = StateFailed
	p.err = ErrDeleted
}

// noCopy lets go vet's copylocks check flag Program values being copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
