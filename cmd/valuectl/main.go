// Command valuectl loads a configuration file and writes its properties
// as typed cells in text, XML or binary form.
//
//	valuectl --config app.toml --format xml
//	valuectl --config app.yaml --only LONG --exclude '*.password'
//	valuectl --config app.toml -- --server.port=9090
//	valuectl --read cells.bin
//
// Without --config the file is taken from $VALUECTL_CONFIG or searched for
// as valuectl.toml, .yaml or .json in the working directory and the XDG
// config directories.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/lixenwraith/commons/config"
	"github.com/lixenwraith/commons/filter"
	"github.com/lixenwraith/commons/value"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

type options struct {
	Config    string   `long:"config" short:"c" description:"Configuration file (TOML, YAML or JSON); searched for as valuectl.* when omitted"`
	Format    string   `long:"format" short:"f" default:"text" choice:"text" choice:"xml" choice:"binary" description:"Output format"`
	EnvPrefix string   `long:"env-prefix" description:"Environment variable prefix for overrides"`
	Only      string   `long:"only" description:"Keep only properties of this type (e.g. LONG, STRING)"`
	Exclude   []string `long:"exclude" description:"Drop properties whose name matches this glob; repeatable"`
	Read      string   `long:"read" description:"Decode a binary cell stream and print it as text"`
	MaxSize   int64    `long:"max-size" default:"1048576" description:"Refuse configuration files larger than this many bytes; 0 disables the limit"`
	Strict    bool     `long:"strict" description:"Refuse configuration paths above the working directory and files not owned by the current user"`
	Verbose   bool     `long:"verbose" short:"v" description:"Log loading and substitution diagnostics to stderr"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	rest, err := parser.ParseArgs(args)
	if flags.WroteHelp(err) {
		return exitCodeSuccess
	} else if err != nil {
		return exitCodeError
	}

	logger := zap.NewNop()
	if opts.Verbose {
		zapConfig := zap.NewDevelopmentConfig()
		zapConfig.DisableCaller = true
		if l, err := zapConfig.Build(); err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if opts.Read != "" {
		err = decodeStream(opts.Read, out)
	} else {
		err = export(opts, rest, logger, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "valuectl: %v\n", err)
		return exitCodeError
	}
	return exitCodeSuccess
}

func export(opts options, overrides []string, logger *zap.Logger, w io.Writer) error {
	if opts.Config == "" {
		path, ok := config.DiscoverFile(config.DefaultDiscoveryOptions("valuectl"), nil)
		if !ok {
			return errors.New("no --config given and no valuectl config file found")
		}
		logger.Debug("discovered config file", zap.String("path", path))
		opts.Config = path
	}

	chain, err := buildChain(opts)
	if err != nil {
		return err
	}

	cells, err := loadCells(opts, overrides, logger)
	if err != nil {
		return err
	}
	cells = chain.Filter(cells)

	switch opts.Format {
	case "xml":
		return writeXML(w, cells)
	case "binary":
		return writeBinary(w, cells)
	default:
		return writeText(w, cells)
	}
}

func buildChain(opts options) (*filter.Chain, error) {
	chain := filter.NewChain(filter.Accept)
	for _, pattern := range opts.Exclude {
		rule, err := filter.NameRule(pattern, filter.OnMatch(filter.Deny))
		if err != nil {
			return nil, err
		}
		chain.Add(rule)
	}
	if opts.Only != "" {
		t, err := value.ParseType(opts.Only)
		if err != nil {
			return nil, err
		}
		chain.Add(filter.TypeRule(t, filter.OnMismatch(filter.Deny)))
	}
	return chain, nil
}

func loadCells(opts options, overrides []string, logger *zap.Logger) ([]*value.NamedMultiValues, error) {
	loadOpts := config.LoadOptions{
		Sources:   []config.Source{config.SourceCLI, config.SourceEnv, config.SourceFile, config.SourceDefault},
		EnvPrefix: opts.EnvPrefix,
	}
	if opts.EnvPrefix == "" {
		// Unprefixed names would collide with the process environment.
		loadOpts.Sources = []config.Source{config.SourceCLI, config.SourceFile, config.SourceDefault}
	}
	cfg := config.NewWithOptions(loadOpts)
	cfg.SetLogger(logger)
	cfg.SetSecurityOptions(config.SecurityOptions{
		PreventPathTraversal: opts.Strict,
		MaxFileSize:          opts.MaxSize,
		EnforceFileOwnership: opts.Strict,
	})

	if err := cfg.RegisterFile(opts.Config); err != nil {
		if errors.Is(err, config.ErrConfigNotFound) || errors.Is(err, config.ErrFileRejected) {
			return nil, err
		}
		logger.Warn("skipped keys", zap.Error(err))
	}
	if err := cfg.Load(opts.Config, overrides); err != nil {
		return nil, err
	}

	var cells []*value.NamedMultiValues
	for _, path := range cfg.Paths() {
		cell, err := cfg.NamedProperty(path)
		if err != nil {
			logger.Warn("skipped property", zap.String("path", path), zap.Error(err))
			continue
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

func writeText(w io.Writer, cells []*value.NamedMultiValues) error {
	for _, cell := range cells {
		if _, err := fmt.Fprintln(w, cell.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeXML(w io.Writer, cells []*value.NamedMultiValues) error {
	root := etree.NewElement("properties")
	for _, cell := range cells {
		el, err := value.NamedMultiValuesToXML(cell, value.XMLOptions{RootTag: "property", PreserveSpace: true})
		if err != nil {
			return fmt.Errorf("property %s: %w", cell.Name, err)
		}
		root.AddChild(el)
	}
	return value.WriteXML(w, root, 2)
}

// writeBinary writes a cell count followed by each named cell.
func writeBinary(w io.Writer, cells []*value.NamedMultiValues) error {
	if err := value.NewWriter(w).WriteUint32(uint32(len(cells))); err != nil {
		return err
	}
	for _, cell := range cells {
		if err := value.WriteNamedMultiValues(w, cell); err != nil {
			return fmt.Errorf("property %s: %w", cell.Name, err)
		}
	}
	return nil
}

func decodeStream(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	n, err := value.NewReader(r).ReadUint32()
	if err != nil {
		return fmt.Errorf("read cell count: %w", err)
	}
	var cells []*value.NamedMultiValues
	for i := uint32(0); i < n; i++ {
		cell, err := value.ReadNamedMultiValues(r)
		if err != nil {
			return fmt.Errorf("read cell %d: %w", i, err)
		}
		if cell == nil {
			return fmt.Errorf("read cell %d: %w: nil cell", i, value.ErrInvalidFormat)
		}
		cells = append(cells, cell)
	}
	return writeText(w, cells)
}
