package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/zephyrtronium/calctree"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, hist string
		echo               bool
		prec               int
	)
	home, _ := os.UserHomeDir()
	flag.StringVar(&inname, "in", "", "token script file, - for stdin (default interactive if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&hist, "history", filepath.Join(home, ".calctree_history"), "interactive history file, empty to disable")
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.BoolVar(&echo, "echo", false, "print the expression tree after each line")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	c := newCalculator(os.Stdout, os.Stderr, verb, echo, calctree.Prec(uint(prec)))
	if inname == "" && flag.NArg() == 0 {
		repl(c, hist)
		return
	}

	var ins []io.Reader
	f, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}
	bad, err := script(c, ins...)
	if err != nil {
		log.Fatal(err)
	}
	if bad > 0 {
		os.Exit(1)
	}
}

// script runs each line of each input through c and returns the number of
// rejected tokens and commands.
func script(c *calculator, ins ...io.Reader) (int, error) {
	bad := 0
	for _, in := range ins {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			n, quit := c.line(sc.Text())
			bad += n
			if quit {
				return bad, nil
			}
		}
		if err := sc.Err(); err != nil {
			return bad, err
		}
	}
	return bad, nil
}

func infile(inname string) (io.ReadCloser, error) {
	switch inname {
	case "":
		return nil, nil
	case "-":
		return io.NopCloser(os.Stdin), nil
	default:
		return os.Open(inname)
	}
}
