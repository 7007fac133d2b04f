// Command furigana prints the furigana of a word given its reading, or of a
// whole sentence.
//
//	furigana 物の怪 もののけ
//	furigana -all -format bracket 格好 かっこう
//	furigana -text 昨日、本屋で哲学書を見つけた
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/gookit/color"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"

	furigana "github.com/tassa-yoniso-manasi-karoto/go-furigana"
	"github.com/tassa-yoniso-manasi-karoto/go-furigana/internal/annotate"
	"github.com/tassa-yoniso-manasi-karoto/go-furigana/internal/tokenize"
	"github.com/tassa-yoniso-manasi-karoto/go-furigana/kanjidic"
)

var (
	errUsage = errors.New("usage: furigana [flags] WORD READING | furigana [flags] -text SENTENCE")
	// wraps errors the flag package has already printed
	errFlags = errors.New("invalid flags")
)

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stdout, os.Stderr), os.Stderr))
}

// exitCode reports err on stderr unless it was printed already.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errFlags):
		return 2
	}
	color.Fprintln(stderr, color.Red.Sprint(err))
	return 1
}

type cli struct {
	cfg    *Config
	format furigana.Format
	text   string
	all    bool
	json   bool
	debug  bool
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c := &cli{cfg: cfg, stdout: stdout, stderr: stderr}
	fs := flag.NewFlagSet("furigana", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.DictPath, "dict", cfg.DictPath, "KANJIDIC2 XML or CSV kanji table")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: html or bracket")
	fs.IntVar(&cfg.MaxResults, "max", cfg.MaxResults, "candidate cap per word, 0 for none")
	fs.StringVar(&c.text, "text", "", "annotate a whole sentence instead of a single word")
	fs.BoolVar(&c.all, "all", false, "print every candidate, best first")
	fs.BoolVar(&c.json, "json", false, "print JSON")
	fs.BoolVar(&c.debug, "debug", false, "log the search and dump the result")
	fs.Usage = cleanenv.FUsage(stderr, cfg, nil, fs.PrintDefaults)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errFlags, err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.format, _ = furigana.ParseFormat(cfg.Format)

	c.setupLogger()
	furigana.Logger.Debug().
		Str("cmd", shellescape.QuoteCommand(append([]string{"furigana"}, args...))).
		Msg("starting")

	dict := c.loadDictionary()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	switch {
	case c.text != "":
		return c.annotateText(ctx, dict)
	case fs.NArg() == 2:
		return c.segmentWord(ctx, fs.Arg(0), fs.Arg(1), dict)
	}
	return errUsage
}

func (c *cli) setupLogger() {
	level, _ := zerolog.ParseLevel(c.cfg.LogLevel)
	if c.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: c.stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(level)
	furigana.Logger = logger
	kanjidic.Logger = logger
}

// loadDictionary falls back to no dictionary at all: segmentation still
// works, it just cannot tell the candidates apart.
func (c *cli) loadDictionary() furigana.ReadingDictionary {
	path := c.cfg.DictPath
	if path == "" {
		var err error
		if path, err = kanjidic.DefaultPath(); err != nil {
			furigana.Logger.Warn().Err(err).Msg("no reading dictionary, candidates will not be ranked")
			return nil
		}
	}
	dict, err := kanjidic.Open(path, kanjidic.Options{Nanori: c.cfg.Nanori})
	if err != nil {
		furigana.Logger.Warn().Err(err).Str("path", path).Msg("no reading dictionary, candidates will not be ranked")
		return nil
	}
	furigana.Logger.Info().Str("path", path).Int("characters", len(dict)).Msg("reading dictionary loaded")
	return dict
}

func (c *cli) options() []furigana.Option {
	opts := []furigana.Option{furigana.WithMaxResults(c.cfg.MaxResults)}
	if c.debug {
		opts = append(opts, furigana.WithTracer(furigana.NewSearchTracer()))
	}
	return opts
}

func (c *cli) segmentWord(ctx context.Context, word, reading string, dict furigana.ReadingDictionary) error {
	ranked, err := furigana.SegmentGradedWithContext(ctx, word, reading, dict, c.options()...)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		color.Fprintln(c.stderr, color.Yellow.Sprintf("no way to read %s as %s", word, reading))
		return nil
	}
	if !c.all {
		ranked = ranked[:1]
	}
	if c.debug {
		pp.Fprintln(c.stderr, ranked)
	}
	if c.json {
		return c.printJSON(ranked)
	}

	for i, g := range ranked {
		line := fmt.Sprintf("%+3d  %s", g.Accuracy, furigana.RenderAs(g.Mapping, c.format))
		if i == 0 {
			line = color.Green.Sprint(line)
		}
		color.Fprintln(c.stdout, line)
	}
	return nil
}

func (c *cli) annotateText(ctx context.Context, dict furigana.ReadingDictionary) error {
	tok, err := tokenize.New()
	if err != nil {
		return err
	}
	words, err := annotate.New(tok, dict, c.options()...).Annotate(ctx, c.text)
	if err != nil {
		return err
	}
	if c.debug {
		pp.Fprintln(c.stderr, words)
	}
	if c.json {
		return c.printJSON(words)
	}
	fmt.Fprintln(c.stdout, annotate.Render(words, c.format))
	return nil
}

func (c *cli) printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = c.stdout.Write(pretty.Pretty(b))
	return err
}
