// shadercheck compiles GLSL vertex/fragment pairs against the local driver
// and prints the compile or link log.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/shader/gldriver"
	"github.com/Faultbox/learngl/internal/engine/window"
	"github.com/Faultbox/learngl/internal/logger"
	"github.com/Faultbox/learngl/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		cmdCheck(args)
	case "scenes":
		cmdScenes(args)
	case "dump":
		cmdDump(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shadercheck - GLSL program checker

Usage:
  shadercheck <command> [options]

Commands:
  check [-backend sdl|glfw] <file.vert> <file.frag>  Compile and link a pair
  scenes [-backend sdl|glfw]                          Check every built-in scene
  dump <scene>                                        Print a scene's sources

Examples:
  shadercheck check shaders/textured.vert shaders/textured.frag
  shadercheck scenes -backend glfw
  shadercheck dump cubes`)
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	backend := fs.String("backend", "sdl", "Window backend (sdl, glfw)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: shadercheck check [-backend sdl|glfw] <file.vert> <file.frag>")
		os.Exit(1)
	}

	closeCtx := openContext(*backend, *debug)
	p, err := shader.New(gldriver.New(), fs.Arg(0), fs.Arg(1), shader.WithLogger(logger.Named("shader")))
	p.Delete()
	closeCtx()

	if !report(fs.Arg(0)+" + "+fs.Arg(1), err) {
		os.Exit(1)
	}
}

func cmdScenes(args []string) {
	fs := flag.NewFlagSet("scenes", flag.ExitOnError)
	backend := fs.String("backend", "sdl", "Window backend (sdl, glfw)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	closeCtx := openContext(*backend, *debug)
	env := scene.Env{Driver: gldriver.New(), Log: logger.Named("shader")}

	ok := true
	for _, name := range scene.Names() {
		p, err := scene.LoadProgram(env, name)
		if p != nil {
			p.Delete()
		}
		if !report(name, err) {
			ok = false
		}
	}
	closeCtx()

	if !ok {
		os.Exit(1)
	}
}

func cmdDump(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: shadercheck dump <scene>")
		os.Exit(1)
	}

	vert, frag, err := scene.Sources(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %s (want one of %v)\n", args[0], scene.Names())
		os.Exit(1)
	}
	fmt.Printf("// %s.vert\n%s\n// %s.frag\n%s", args[0], vert, args[0], frag)
}

// openContext creates a hidden window so a GL context is current, and
// returns the function that tears it down.
func openContext(backend string, debug bool) func() {
	level := "warn"
	if debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	defaults := config.Default().Window
	win, err := window.New(window.Config{
		Title:   "shadercheck",
		Width:   defaults.Width,
		Height:  defaults.Height,
		Hidden:  true,
		Backend: backend,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r, err := renderer.New(renderer.Config{Width: defaults.Width, Height: defaults.Height})
	if err != nil {
		win.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	info := r.Info()
	fmt.Printf("OpenGL %s (%s), GLSL %s\n", info.Version, info.Renderer, info.GLSL)

	return func() {
		r.Close()
		win.Close()
		logger.Sync()
	}
}

// report prints the outcome for one program and reports whether it linked.
func report(label string, err error) bool {
	if err == nil {
		fmt.Printf("%-40s ok\n", label)
		return true
	}

	fmt.Printf("%-40s FAILED\n", label)

	var (
		cerr *shader.CompileError
		lerr *shader.LinkError
		rerr *shader.SourceReadError
	)
	switch {
	case errors.As(err, &cerr):
		fmt.Printf("  %s stage:\n%s\n", cerr.Stage, indent(cerr.Log))
	case errors.As(err, &lerr):
		fmt.Printf("  link:\n%s\n", indent(lerr.Log))
	case errors.As(err, &rerr):
		fmt.Printf("  %s source %s: %v\n", rerr.Stage, rerr.Path, rerr.Err)
	default:
		fmt.Printf("  %v\n", err)
	}
	return false
}

func indent(log string) string {
	if log == "" {
		return "    (empty log)"
	}
	return "    " + strings.ReplaceAll(log, "\n", "\n    ")
}
