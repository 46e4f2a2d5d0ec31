// Package main implements the qfrcli binary.
//
// Philosophy: a thin shell over pkg/format and pkg/emit — import, export,
// stats, nothing more. Grounded on
// _examples/AKJUS-oqtopus-engine/coreapp/cmd/edge/main.go's
// go-flags.NewParser/AddCommand shape and GriffinCanCode-Typthon's
// cmd/typthon/main.go command dispatch, scaled down to this CLI's much
// smaller surface.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	jsoniter "github.com/json-iterator/go"

	"github.com/qfr-project/qfr/pkg/format"
	"github.com/qfr-project/qfr/pkg/qfrconf"
	"github.com/qfr-project/qfr/pkg/qfrerr"
	"github.com/qfr-project/qfr/pkg/qfrlog"
)

const version = "0.1.0"

var parser *flags.Parser

type options struct {
	Config  string `long:"config" description:"path to a qfrconf TOML file" env:"QFR_CONFIG"`
	Verbose bool   `long:"verbose" short:"v" description:"enable debug logging"`
}

var opts options

func init() {
	parser = flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "qfrcli"
	parser.LongDescription = "Quantum Functionality Representation import/export/stats tool."
	parser.AddCommand("import", "parse a circuit file", "parse a circuit file and re-emit it as OpenQASM 2.0", &importCmd{})
	parser.AddCommand("export", "alias of import", "alias of import, writing OpenQASM to --out instead of stdout", &exportCmd{})
	parser.AddCommand("stats", "print circuit statistics", "print (n, anc, m) for a circuit file", &statsCmd{})
	parser.AddCommand("version", "print the version", "print the qfrcli version", &versionCmd{})
}

func main() {
	if opts.Verbose {
		qfrlog.InitDev()
	} else {
		_ = qfrlog.Init(qfrlog.DefaultConfig())
	}

	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			code = 0
		}
		os.Exit(code)
	}
}

func loadConfig() qfrconf.Config {
	cfg, err := qfrconf.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config %q: %v\n", opts.Config, err)
		return qfrconf.Default()
	}
	return cfg
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type importCmd struct {
	Args struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *importCmd) Execute(args []string) error {
	cfg := loadConfig()
	src, err := readSource(c.Args.Path)
	if err != nil {
		return err
	}
	qc, diags, err := format.Import(c.Args.Path, src, cfg.MaxQubits, nil)
	if err != nil {
		return err
	}
	printDiagnostics(diags)

	out, err := format.ExportOpenQASM(qc)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

type exportCmd struct {
	Out  string `long:"out" short:"o" description:"output file (default: stdout)"`
	Args struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *exportCmd) Execute(args []string) error {
	cfg := loadConfig()
	src, err := readSource(c.Args.Path)
	if err != nil {
		return err
	}
	qc, diags, err := format.Import(c.Args.Path, src, cfg.MaxQubits, nil)
	if err != nil {
		return err
	}
	printDiagnostics(diags)

	out, err := format.ExportOpenQASM(qc)
	if err != nil {
		return err
	}
	if c.Out == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(c.Out, []byte(out), 0644)
}

type statsCmd struct {
	JSON bool `long:"json" description:"print statistics as JSON"`
	Args struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

// statsResult is the (n, anc, m) triple spec.md §6 names as the CLI's
// statistics surface: data qubits, ancillae, and stored operation count.
type statsResult struct {
	DataQubits int `json:"n"`
	Ancillae   int `json:"anc"`
	Operations int `json:"m"`
}

func (c *statsCmd) Execute(args []string) error {
	cfg := loadConfig()
	src, err := readSource(c.Args.Path)
	if err != nil {
		return err
	}
	qc, diags, err := format.Import(c.Args.Path, src, cfg.MaxQubits, nil)
	if err != nil {
		return err
	}
	printDiagnostics(diags)

	result := statsResult{
		DataQubits: qc.State.NQubits,
		Ancillae:   qc.State.NAncillae,
		Operations: len(qc.Ops),
	}

	if c.JSON {
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(result)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}

	fmt.Printf("n=%d anc=%d m=%d\n", result.DataQubits, result.Ancillae, result.Operations)
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Execute(args []string) error {
	fmt.Printf("qfrcli version %s\n", version)
	return nil
}

func printDiagnostics(diags *qfrerr.Diagnostics) {
	if diags.Empty() {
		return
	}
	for _, e := range diags.Errors() {
		fmt.Fprintf(os.Stderr, "notice: %v\n", e)
	}
}
