// Package driver runs the WebIDL to WIT conversion over files: it reads
// the input, reports syntax errors with positions, converts the parse tree
// and writes the result.
package driver

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dennwc/webidl2wit/ast"
	"github.com/dennwc/webidl2wit/internal/config"
	"github.com/dennwc/webidl2wit/parser"
	"github.com/dennwc/webidl2wit/wit"
)

// Extension is the extension of WebIDL input files.
const Extension = ".webidl"

// Driver converts WebIDL files according to a Config.
type Driver struct {
	fs     afero.Fs
	stdout io.Writer
	log    *zap.SugaredLogger
	cfg    *config.Config
}

// New creates a driver reading and writing files on fs. Generated WIT and
// tree dumps go to stdout when the config asks for it.
func New(fs afero.Fs, stdout io.Writer, log *zap.SugaredLogger, cfg *config.Config) *Driver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Driver{fs: fs, stdout: stdout, log: log, cfg: cfg}
}

// ModuleName derives the WIT interface name from an input path: the
// kebab-case file stem, so URLSearchParams.webidl becomes url-search-params.
func ModuleName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return wit.Kebab(stem)
}

// Run converts every path in order. A failing file does not stop the
// remaining ones; all failures are returned combined.
func (d *Driver) Run(paths []string) error {
	if d.cfg.InterfaceName != "" && len(paths) > 1 && !d.cfg.Stdout {
		return errors.WithHint(
			errors.Newf("interface name %q given for %d input files", d.cfg.InterfaceName, len(paths)),
			"all outputs would be written to the same file; convert the files one at a time",
		)
	}
	var errs error
	for _, path := range paths {
		if _, err := d.ConvertFile(path); err != nil {
			d.log.Errorw("Conversion failed", "file", path, "error", err)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// ConvertFile converts a single file and returns the path written, or an
// empty string when the output went to stdout.
func (d *Driver) ConvertFile(path string) (string, error) {
	if ext := filepath.Ext(path); ext != Extension {
		d.log.Warnw("Unexpected input file extension", "file", path, "extension", ext)
	}
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	src := string(data)

	name := d.cfg.InterfaceName
	if name == "" {
		name = ModuleName(path)
	}
	d.log.Infow("Converting", "file", path, "interface", name)

	f := parser.Parse(src)
	if d.log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		d.log.Debugw("Parsed", "file", path, "tree", parser.DumpString(f))
	}
	if d.cfg.DumpTree {
		if err := parser.Dump(d.stdout, f); err != nil {
			return "", errors.Wrap(err, "failed to dump parse tree")
		}
		fmt.Fprintln(d.stdout)
	}
	if err := parser.Errors(src, f); err != nil {
		return "", errors.WithHint(
			errors.Wrapf(err, "syntax error in %s", path),
			"only WebIDL accepted by the parser can be converted",
		)
	}

	if d.cfg.AllErrors {
		if err := wit.Check(f.Declarations); err != nil {
			var errs error
			for _, e := range multierr.Errors(err) {
				errs = multierr.Append(errs, d.locate(path, src, e))
			}
			return "", errs
		}
	}
	out, err := wit.Convert(f.Declarations, name)
	if err != nil {
		return "", d.locate(path, src, err)
	}

	if d.cfg.Stdout {
		if _, err := io.WriteString(d.stdout, out); err != nil {
			return "", errors.Wrap(err, "failed to write output")
		}
		return "", nil
	}

	if err := d.fs.MkdirAll(d.cfg.OutputDir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory %s", d.cfg.OutputDir)
	}
	dst := filepath.Join(d.cfg.OutputDir, name+".wit")
	if err := afero.WriteFile(d.fs, dst, []byte(out), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", dst)
	}
	d.log.Infow("Wrote WIT", "file", dst, "bytes", len(out))
	return dst, nil
}

// locate adds the file name, the source position of the offending node and
// a remediation hint to a conversion error. The typed error stays
// reachable with errors.As.
func (d *Driver) locate(path, src string, err error) error {
	var cerr wit.ConversionError
	if !errors.As(err, &cerr) {
		return errors.Wrapf(err, "failed to convert %s", path)
	}
	loc := path
	if n := cerr.Node(); n != nil {
		line, col := parser.Position(src, n.NodeBase().Start)
		loc = fmt.Sprintf("%s:%d:%d", path, line, col)
	}
	err = errors.WithDetailf(errors.Wrapf(err, "%s", loc), "kind: %s", cerr.Kind())
	if hint := hintFor(cerr); hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}

func hintFor(err wit.ConversionError) string {
	switch err := err.(type) {
	case *wit.UnsupportedTypeError:
		return "supported types are the string, integer, floating point and boolean primitives, " +
			"sequence<T>, FrozenArray<T> and ObservableArray<T>"
	case *wit.UnsupportedUnionError:
		return "replace the union with one of its member types or split the operation"
	case *wit.UnsupportedInheritanceError:
		if _, ok := err.Inheritor.(*ast.Interface); ok {
			return "copy the inherited members into the interface and drop the parent"
		}
	case *wit.UnsupportedRootKindError:
		return "only non-callback interfaces can be converted; move other declarations to a separate file"
	}
	return ""
}
