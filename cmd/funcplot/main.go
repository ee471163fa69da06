package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"

	"github.com/zephyrtronium/funcplot"
	"github.com/zephyrtronium/funcplot/internal/prompt"
	"github.com/zephyrtronium/funcplot/internal/render"
)

const version = "funcplot 0.1.0"

const usage = `funcplot

Usage:
  funcplot [options] [TYPE]
  funcplot -t | --types
  funcplot -h | --help
  funcplot --version

Arguments:
  TYPE  Function type: Polynomial, Rational, Exponential, Logarithmic, Sine,
        Cosine, or Tangent. Asked for interactively when omitted.

Options:
  -d, --density=N    Samples per unit interval [default: 10].
  -o, --output=FILE  Plot image to write. The format follows the extension
                     (png, svg, pdf, ...) [default: plot.png].
  -n, --no-plot      Print the table without plotting.
  -l, --literals     Read literals like 1e3 as written before substituting e.
  -p, --prec=BITS    Precision in bits of the pi and e expansions [default: 53].
  -t, --types        List the function types and their general forms.
  -h, --help         Display this help.
  --version          Print the version.

Numbers may use pi, π, and e. Substitution is textual: 2pi reads as 23.14...
`

const selectPrompt = "Select a general form for your function from the list of function types by typing `Types` "

// config is the parsed command line.
type config struct {
	kind     string
	types    bool
	density  int
	output   string
	noPlot   bool
	literals bool
	prec     int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("funcplot: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatal(err)
	}
}

func run(argv []string, in *os.File, out io.Writer) error {
	cfg, help, err := parseArgs(argv)
	if err != nil {
		return err
	}
	if help != "" {
		fmt.Fprintln(out, help)
		return nil
	}
	if cfg.types {
		return render.Kinds(out, funcplot.Kinds())
	}

	opts := []funcplot.ParseOption{funcplot.Prec(uint(cfg.prec))}
	if cfg.literals {
		opts = append(opts, funcplot.PreferLiterals())
	}
	sess := prompt.Open(in, out)
	defer sess.Close()
	ask := prompt.NewAsker(sess, funcplot.NewParser(opts...))

	kind, err := chooseKind(cfg.kind, sess, out)
	if err != nil {
		return err
	}
	f, err := ask.Function(kind)
	if err != nil {
		return fmt.Errorf("reading %s: %w", kind, err)
	}
	xmin, xmax, err := ask.Range()
	if err != nil {
		return fmt.Errorf("reading range: %w", err)
	}
	xs, err := funcplot.Sample(xmin, xmax, cfg.density)
	if err != nil {
		return err
	}
	pts := funcplot.Tabulate(f, xs)

	fmt.Fprintln(out, f)
	if err := render.Table(out, pts); err != nil {
		return err
	}
	if cfg.noPlot {
		return nil
	}
	if err := render.Save(cfg.output, f.String(), pts); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	log.Printf("wrote %s", cfg.output)
	return nil
}

// parseArgs reads the command line. If the user asked for help or the version,
// the text to show is returned instead of a config.
func parseArgs(argv []string) (cfg config, help string, err error) {
	p := &docopt.Parser{
		HelpHandler: func(err error, usage string) { help = usage },
	}
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return cfg, "", fmt.Errorf("invalid arguments\n%s", help)
	}
	if help != "" {
		return cfg, help, nil
	}

	cfg.kind, _ = opts.String("TYPE")
	cfg.types, _ = opts.Bool("--types")
	cfg.output, _ = opts.String("--output")
	cfg.noPlot, _ = opts.Bool("--no-plot")
	cfg.literals, _ = opts.Bool("--literals")
	if cfg.density, err = opts.Int("--density"); err != nil || cfg.density < 1 {
		return cfg, "", fmt.Errorf("density must be a positive integer")
	}
	if cfg.prec, err = opts.Int("--prec"); err != nil || cfg.prec < 1 {
		return cfg, "", fmt.Errorf("precision must be a positive integer")
	}
	return cfg, "", nil
}

// chooseKind resolves the function type from the command line or, failing
// that, by asking. Replying "Types" lists the types and asks again.
func chooseKind(name string, p prompt.Prompter, out io.Writer) (funcplot.Kind, error) {
	if name != "" {
		return funcplot.ParseKind(name)
	}
	for {
		s, err := p.Prompt(selectPrompt)
		if err != nil {
			return funcplot.Undefined, fmt.Errorf("reading function type: %w", err)
		}
		if !strings.EqualFold(strings.TrimSpace(s), "Types") {
			return funcplot.ParseKind(s)
		}
		if err := render.Kinds(out, funcplot.Kinds()); err != nil {
			return funcplot.Undefined, err
		}
	}
}
