package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/goforj/godump"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/zephyrtronium/mathconsole"
)

const prompt = "[CAL] << "

func main() {
	var (
		inname        string
		with          [][2]string
		prec          int
		verbose, dump bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constant definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, one line per expression or command (default stdin if no args given)")
	flag.Func("given", "name=value constant definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", mathconsole.DefaultPrecision, "significant digits in results")
	flag.BoolVar(&verbose, "v", false, "log each line and registry change")
	flag.BoolVar(&dump, "dump", false, "dump all constant definitions before reading input")
	flag.Parse()
	if verbose {
		log.SetLogLevel(log.Verbose)
	}
	if prec < 0 || prec > mathconsole.MaxPrecision {
		log.Fatalf("precision (%d) must be between 0 and %d", prec, mathconsole.MaxPrecision)
	}

	con := mathconsole.New(mathconsole.Prec(prec))
	for _, d := range with {
		if _, err := con.Submit(d[0] + mathconsole.VerbDefine + d[1]); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}
	if dump {
		godump.Dump(con.Registry().List(mathconsole.ListAll))
	}

	switch {
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			run(con, os.Stdout, arg)
		}
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		scan(con, f)
	case term.IsTerminal(int(os.Stdin.Fd())):
		interact(con)
	default:
		scan(con, os.Stdin)
	}
}

// run submits one line and prints its result.
func run(con *mathconsole.Console, w io.Writer, line string) {
	line = mathconsole.StripPrompt(line)
	if strings.TrimSpace(line) == "" {
		return
	}
	r, err := con.Submit(line)
	if err != nil {
		fmt.Fprintln(w, "[ERR] >> "+err.Error())
		return
	}
	switch r.Kind {
	case mathconsole.ResultClear:
		fmt.Fprint(w, "\033[H\033[2J")
	case mathconsole.ResultList:
		fmt.Fprintln(w, "[OUT] >>")
		for _, s := range strings.Split(r.Text, "\n") {
			if s != "" {
				fmt.Fprintln(w, "\t"+s)
			}
		}
	default:
		fmt.Fprintln(w, "[OUT] >> "+r.Text)
	}
}

func scan(con *mathconsole.Console, r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		run(con, os.Stdout, sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("reading input: %v", err)
	}
}

// interact runs a line-editing prompt with history and name completion.
func interact(con *mathconsole.Console) {
	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)
	l.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		start := pos
		for start > 0 && isNameByte(line[start-1]) {
			start--
		}
		names := con.Registry().Complete(line[start:pos])
		for i, s := range names {
			// Leave the cursor inside the parentheses of a function.
			names[i] = strings.TrimSuffix(s, ")")
		}
		return line[:start], names, line[pos:]
	})
	for {
		s, err := l.Prompt(prompt)
		switch {
		case err == nil: // do nothing
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			return
		default:
			log.Errf("reading input: %v", err)
			return
		}
		if strings.TrimSpace(s) != "" {
			l.AppendHistory(s)
		}
		run(con, os.Stdout, s)
	}
}

func isNameByte(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}
