// objtool is a CLI utility for inspecting and converting Wavefront OBJ meshes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objmesh/internal/assets"
	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/logger"
	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/formats"
	"github.com/Faultbox/objmesh/pkg/texture"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var code int
	switch command {
	case "info":
		code = cmdInfo(args, os.Stdout)
	case "check":
		code = cmdCheck(args, os.Stdout)
	case "dump":
		code = cmdDump(args, os.Stdout)
	case "reverse":
		code = cmdReverse(args, os.Stdout)
	case "config":
		code = cmdConfig(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		code = 1
	}

	logger.Sync()
	os.Exit(code)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `objtool - Wavefront OBJ mesh utility

Usage:
  objtool <command> [options] <file.obj>

Commands:
  info <file.obj>      Show mesh statistics per level of detail
  check <file.obj>...  Print errors and warnings, exit 1 on errors
  dump <file.obj>      Print the parsed mesh (-format yaml for a summary)
  reverse <file.obj>   Print the mesh back in the -Z viewing convention
  config [-save path]  Print or save the effective configuration

Common options:
  -config <path>       Config file (default ./objtool.yaml)
  -encoding <name>     Source character set (%v)
  -probe <mode>        Texture probe: open, decode or none
  -max-errors <n>      Errors to print, 0 = all
  -max-warnings <n>    Warnings to print, 0 = all
  -format <fmt>        Output format: text or yaml
  -debug               Enable debug logging

Examples:
  objtool info models/ship.obj
  objtool check -max-errors 0 models/ship.obj
  objtool dump -format yaml -encoding euc-kr data/model/npc.obj
`, encoding.Names())
}

// session holds the configuration shared by the mesh commands.
type session struct {
	cfg    *config.Config
	args   []string
	assets *assets.Manager // shared by every mesh the command loads
}

// setup parses the common flags of a command and initializes logging.
func setup(name string, args []string, extra func(fs *flag.FlagSet)) (*session, error) {
	var flags config.Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Register(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(&flags)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, os.Stderr); err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		args:   fs.Args(),
		assets: assets.NewManager(formats.DirOpener{}),
	}, nil
}

// path returns the mesh named by the first positional argument.
func (s *session) path(usage string) (string, error) {
	if len(s.args) < 1 {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return s.args[0], nil
}

// load parses the mesh at path. Material libraries and textures are read
// through the session's asset cache.
func (s *session) load(path string) (*formats.OBJ, error) {
	probe, err := texture.ProbeByName(s.cfg.Parse.TextureProbe, s.assets)
	if err != nil {
		return nil, err
	}

	log := logger.Named("formats")
	log.Debug("loading mesh", zap.String("path", path), zap.String("probe", s.cfg.Parse.TextureProbe))

	return formats.ParseOBJFile(path, &formats.ParseOptions{
		Opener:       s.assets,
		TextureProbe: probe,
		Encoding:     s.cfg.Parse.Encoding,
		Logger:       log,
	})
}

// loadArg parses the mesh named by the first positional argument.
func (s *session) loadArg(usage string) (*formats.OBJ, error) {
	path, err := s.path(usage)
	if err != nil {
		return nil, err
	}
	return s.load(path)
}

// report writes the capped diagnostics of obj to w.
func (s *session) report(w io.Writer, obj *formats.OBJ) error {
	if obj.HasErrors() {
		if err := obj.DumpErrors(w, s.cfg.Output.MaxErrors); err != nil {
			return err
		}
	}
	if obj.HasWarnings() {
		if err := obj.DumpWarnings(w, s.cfg.Output.MaxWarnings); err != nil {
			return err
		}
	}
	return nil
}

// fail prints err and returns the exit code for it.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

func cmdInfo(args []string, w io.Writer) int {
	s, err := setup("info", args, nil)
	if err != nil {
		return fail(err)
	}
	obj, err := s.loadArg("objtool info <file.obj>")
	if err != nil {
		return fail(err)
	}

	summary := obj.Summary()
	if s.cfg.Output.Format == config.FormatYAML {
		return writeYAML(w, summary)
	}

	fmt.Fprintf(w, "File:       %s\n", summary.File)
	if summary.Object != "" {
		fmt.Fprintf(w, "Object:     %s\n", summary.Object)
	}
	if summary.ShadowObj != "" {
		fmt.Fprintf(w, "Shadow:     %s\n", summary.ShadowObj)
	}
	fmt.Fprintf(w, "Errors:     %d\n", len(summary.Errors))
	fmt.Fprintf(w, "Warnings:   %d\n", len(summary.Warnings))
	if obj.HasErrors() {
		return 1
	}

	fmt.Fprintf(w, "LODs:       %d\n", len(summary.LODs))
	fmt.Fprintf(w, "Triangles:  %d\n", obj.GetTotalTriangleCount())
	for i, lod := range summary.LODs {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "LOD %d:\n", i+1)
		fmt.Fprintf(w, "  %-10s %d\n", "v", lod.Positions)
		fmt.Fprintf(w, "  %-10s %d\n", "vt", lod.TexCoords)
		fmt.Fprintf(w, "  %-10s %d\n", "vn", lod.Normals)
		fmt.Fprintf(w, "  %-10s %d\n", "triangles", lod.Triangles)
		fmt.Fprintf(w, "  %-10s %v\n", "materials", lod.Materials)
		fmt.Fprintf(w, "  %-10s %v\n", "groups", lod.Groups)
	}
	return 0
}

// checkReport is the YAML form of one mesh's diagnostics.
type checkReport struct {
	File     string   `yaml:"file"`
	Errors   []string `yaml:"errors"`
	Warnings []string `yaml:"warnings"`
}

func cmdCheck(args []string, w io.Writer) int {
	s, err := setup("check", args, nil)
	if err != nil {
		return fail(err)
	}
	if _, err := s.path("objtool check <file.obj>..."); err != nil {
		return fail(err)
	}

	code := 0
	var reports []checkReport
	for _, path := range s.args {
		obj, err := s.load(path)
		if obj == nil {
			return fail(err)
		}
		if obj.HasErrors() {
			code = 1
		}

		if s.cfg.Output.Format == config.FormatYAML {
			summary := obj.Summary()
			reports = append(reports, checkReport{summary.File, summary.Errors, summary.Warnings})
			continue
		}

		if len(s.args) > 1 {
			fmt.Fprintf(w, "== %s\n", path)
		}
		if err := s.report(w, obj); err != nil {
			return fail(err)
		}
		if !obj.HasErrors() && !obj.HasWarnings() {
			fmt.Fprintln(w, "OK")
		}
	}

	if reports != nil {
		if c := writeYAML(w, reports); c != 0 {
			return c
		}
	}

	hits, misses := s.assets.Stats()
	logger.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
	return code
}

func cmdDump(args []string, w io.Writer) int {
	s, err := setup("dump", args, nil)
	if err != nil {
		return fail(err)
	}
	obj, err := s.loadArg("objtool dump <file.obj>")
	if err != nil {
		return fail(err)
	}
	return s.writeMesh(w, obj)
}

func cmdReverse(args []string, w io.Writer) int {
	s, err := setup("reverse", args, nil)
	if err != nil {
		return fail(err)
	}
	obj, err := s.loadArg("objtool reverse <file.obj>")
	if err != nil {
		return fail(err)
	}

	if !obj.HasErrors() {
		obj.Reverse()
	}
	return s.writeMesh(w, obj)
}

// writeMesh writes obj in the configured format. A mesh with errors gets its
// diagnostics instead.
func (s *session) writeMesh(w io.Writer, obj *formats.OBJ) int {
	if s.cfg.Output.Format == config.FormatYAML {
		if code := writeYAML(w, obj.Summary()); code != 0 {
			return code
		}
		if obj.HasErrors() {
			return 1
		}
		return 0
	}

	if obj.HasErrors() {
		if err := s.report(os.Stderr, obj); err != nil {
			return fail(err)
		}
		return 1
	}
	if err := obj.Dump(w); err != nil {
		return fail(err)
	}
	return 0
}

func cmdConfig(args []string, w io.Writer) int {
	var savePath string
	s, err := setup("config", args, func(fs *flag.FlagSet) {
		fs.StringVar(&savePath, "save", "", "Write the effective config to this path (\"default\" for the user config dir)")
	})
	if err != nil {
		return fail(err)
	}

	switch savePath {
	case "":
		data, err := s.cfg.Marshal()
		if err != nil {
			return fail(err)
		}
		w.Write(data)
	case "default":
		path, err := s.cfg.Save()
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(w, "Saved: %s\n", path)
	default:
		if err := s.cfg.SaveTo(savePath); err != nil {
			return fail(err)
		}
		fmt.Fprintf(w, "Saved: %s\n", savePath)
	}
	return 0
}

func writeYAML(w io.Writer, v any) int {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fail(err)
	}
	if err := enc.Close(); err != nil {
		return fail(err)
	}
	return 0
}
