package main

import (
	"fmt"
	"net/http"
	"os"

	box "github.com/Delta456/box-cli-maker/v2"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bardo84/combygo/pkg/cliutil"
	"github.com/bardo84/combygo/pkg/comby"
	"github.com/bardo84/combygo/pkg/httpapi"
)

type options struct {
	Input           *string `short:"i" long:"input" description:"Input file, default stdin"`
	PatternFile     *string `short:"p" long:"pattern-file" description:"Read pattern from file instead of the positional argument"`
	ReplacementFile *string `short:"r" long:"replacement-file" description:"Read replacement from file instead of the positional argument"`
	First           *bool   `long:"first" description:"Single-match mode instead of all-matches"`
	Serve           *bool   `long:"serve" description:"Start the HTTP API instead of running once"`
	Listen          *string `short:"l" long:"listen" description:"Listen address for --serve" default:":8080"`
	Debug           *bool   `short:"d" long:"debug" description:"Verbose logging to stderr"`
}

func boolOpt(p *bool) bool {
	return p != nil && *p
}

func main() {
	var opts options

	args, err := flags.Parse(&opts)
	if err != nil {
		if !flags.WroteHelp(err) {
			os.Exit(2)
		}
		os.Exit(0)
	}

	if boolOpt(opts.Serve) {
		runServe(opts)
		return
	}

	os.Exit(runOnce(opts, args))
}

// runOnce implements the one-shot CLI contract: read input, compile and
// run the pattern once (or repeatedly, in all-matches mode), and print
// the result. Exit codes follow spec.md §6: 0 on a match/replacement,
// 1 on none, 2 for usage/I/O/compile errors.
func runOnce(opts options, args []string) int {
	if len(args) == 0 && opts.PatternFile == nil {
		fmt.Fprintln(os.Stderr, "combygo: a pattern is required")
		return 2
	}

	var positionalPattern, positionalReplacement string
	if len(args) > 0 {
		positionalPattern = args[0]
	}
	if len(args) > 1 {
		positionalReplacement = args[1]
	}

	patternFile := ""
	if opts.PatternFile != nil {
		patternFile = *opts.PatternFile
	}
	pattern, err := cliutil.ReadFileOrInline(patternFile, positionalPattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading pattern"))
		return 2
	}
	if pattern == "" {
		fmt.Fprintln(os.Stderr, "combygo: a pattern is required")
		return 2
	}

	var replacement *string
	if opts.ReplacementFile != nil || len(args) > 1 {
		replacementFile := ""
		if opts.ReplacementFile != nil {
			replacementFile = *opts.ReplacementFile
		}
		r, err := cliutil.ReadFileOrInline(replacementFile, positionalReplacement)
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading replacement"))
			return 2
		}
		replacement = &r
	}

	inputPath := ""
	if opts.Input != nil {
		inputPath = *opts.Input
	}
	text, err := cliutil.ReadInput(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading input"))
		return 2
	}

	find := comby.FindAll
	if boolOpt(opts.First) {
		find = comby.FindFirst
	}

	if boolOpt(opts.Debug) {
		fmt.Fprintf(os.Stderr, "combygo: pattern=%q first=%v replace=%v\n", pattern, boolOpt(opts.First), replacement != nil)
	}

	result, err := find(text, pattern, replacement)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "compiling pattern"))
		return 2
	}

	if replacement != nil {
		fmt.Print(result.Text)
		if result.Text != text {
			return 0
		}
		return 1
	}

	out, err := cliutil.FormatNDJSON(result.Matches)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "encoding matches"))
		return 2
	}
	if out != "" {
		fmt.Println(out)
	}
	if len(result.Matches) > 0 {
		return 0
	}
	return 1
}

func runServe(opts options) {
	listen := ":8080"
	if opts.Listen != nil {
		listen = *opts.Listen
	}

	handler := httpapi.NewHandler(httpapi.Config{Debug: boolOpt(opts.Debug)})

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Compress(5))
	handler.AttachRoutes(router)

	bx := box.New(box.Config{Px: 4, Py: 1})
	bx.Println("Serving!", fmt.Sprintf("- Local:   http://localhost%s", listen))

	server := http.Server{
		Addr:    listen,
		Handler: router,
	}
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "serving"))
		os.Exit(2)
	}
}
