/*
Gruutctl starts an interactive gruut normalization session.

It reads lines of text from stdin, runs each line through the gruut text
normalization pipeline, and prints the resulting sentences and their words to
stdout. Lines are read directly from the console or, in an interactive
terminal session, through GNU readline based routines. To exit the session,
enter an empty line or press Ctrl-D.

Usage:

	gruutctl [flags]

The flags are:

	-v, --version
		Give the current version of gruut and then exit.

	-l, --lang LANG
		The default language to normalize text as, in locale form (e.g.
		en_US). Defaults to "en_US".

	-V, --voice VOICE
		The default voice to tag words with before any explicit SSML voice
		scope is entered. Defaults to none.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout.

	-c, --text TEXT
		Immediately normalize the given text and exit rather than starting an
		interactive session.

	-s, --ssml
		Treat all input as SSML markup rather than plain text.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Bharath-Kumar-3231/gruut"
	"github.com/Bharath-Kumar-3231/gruut/internal/input"
	"github.com/Bharath-Kumar-3231/gruut/internal/version"
	"github.com/dekarrin/rosed"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitNormalizeError indicates an unsuccessful program execution due to
	// a problem normalizing input text.
	ExitNormalizeError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the reader.
	ExitInitError
)

const consoleOutputWidth = 80

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	lang        *string = pflag.StringP("lang", "l", "en_US", "The default language to normalize text as")
	voice       *string = pflag.StringP("voice", "V", "", "The default voice to tag nodes with before any explicit SSML voice scope")
	forceDirect *bool   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	oneShot     *string = pflag.StringP("text", "c", "", "Normalize the given text immediately and exit")
	ssmlInput   *bool   = pflag.BoolP("ssml", "s", false, "Treat all input as SSML markup")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	proc := gruut.New(gruut.DefaultRegistry(), *lang, *voice)

	if *oneShot != "" {
		if err := normalizeAndPrint(proc, os.Stdout, *oneShot); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitNormalizeError
		}
		return
	}

	useReadline := !*forceDirect && !*ssmlInput && isInteractive()

	var reader lineReader
	var err error
	if useReadline {
		reader, err = input.NewInteractiveReader()
	} else {
		reader = input.NewDirectReader(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: initializing input reader: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer reader.Close()
	reader.AllowBlank(true)

	for {
		line, err := reader.ReadLine()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
				returnCode = ExitNormalizeError
			}
			return
		}
		if strings.TrimSpace(line) == "" {
			return
		}
		if err := normalizeAndPrint(proc, os.Stdout, line); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			continue
		}
	}
}

// lineReader is the subset of input.DirectLineReader/
// input.InteractiveLineReader needed here.
type lineReader interface {
	ReadLine() (string, error)
	AllowBlank(bool)
	Close() error
}

func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// normalizeAndPrint runs one line of text through the normalization pipeline
// and writes its sentences, word-wrapped to consoleOutputWidth, to w.
func normalizeAndPrint(proc *gruut.Processor, w io.Writer, text string) error {
	opts := gruut.DefaultProcessOptions()
	opts.SSML = *ssmlInput

	g, root, err := proc.Process(text, opts)
	if err != nil {
		return err
	}

	sentences := proc.Sentences(g, root, gruut.DefaultSentenceOptions())
	for _, s := range sentences {
		wrapped := rosed.Edit(s.Text).Wrap(consoleOutputWidth).String()
		fmt.Fprintf(w, "%s\n", wrapped)

		var words []string
		for _, wd := range s.Words {
			words = append(words, wd.Text)
		}
		fmt.Fprintf(w, "  [%s]\n", strings.Join(words, ", "))
	}

	return nil
}
