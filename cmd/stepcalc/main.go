package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/zephyrtronium/stepcalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname       string
		echo, strict bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.BoolVar(&echo, "echo", false, "print the expression in postfix order")
	flag.BoolVar(&strict, "strict", false, "reject * and / where a term is expected")
	flag.Parse()

	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	if in == os.Stdin {
		fmt.Println("Input expression: ")
	}
	if err := run(in, os.Stdout, echo, strict); err != nil {
		log.Fatal(err)
	}
}

// run evaluates one line from in and prints the steps and result to out.
func run(in io.Reader, out io.Writer, echo, strict bool) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	var opts []stepcalc.ParseOption
	if strict {
		opts = append(opts, stepcalc.StrictOperators())
	}
	a, err := stepcalc.ParseString(line, opts...)
	if err != nil {
		return err
	}
	if echo {
		fmt.Fprintln(out, "Postfix:", a)
	}
	var trace stepcalc.Trace
	r, err := a.Eval(&trace)
	if err != nil {
		return err
	}
	for i, step := range trace.Steps() {
		fmt.Fprintf(out, "Step %d: %s\n", i+1, step)
	}
	fmt.Fprintln(out, "Final result:", r)
	return nil
}

func infile(inname string) (*os.File, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}
