package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	decaf "github.com/norelock/decaf"
	"github.com/norelock/decaf/i18n"
	_ "github.com/norelock/decaf/source"
	cborsrc "github.com/norelock/decaf/source/cbor"
	yamlsrc "github.com/norelock/decaf/source/yaml"
)

func main() {
	fs := flag.NewFlagSet("decaf", flag.ExitOnError)
	var (
		format  string
		pointer string
		compact bool
		dup     string
		lang    string
	)
	fs.StringVar(&format, "format", "json", "input format: json, yaml or cbor")
	fs.StringVar(&pointer, "p", "", "JSON Pointer to extract before printing")
	fs.BoolVar(&compact, "compact", false, "print compact JSON instead of indented")
	fs.StringVar(&dup, "dup", "last", "duplicate object keys: last (wins) or reject")
	fs.StringVar(&lang, "lang", "en", "error message language (en/ja)")
	fs.Usage = usage(fs)
	_ = fs.Parse(os.Args[1:])

	i18n.SetLanguage(lang)

	data, err := readInput(fs.Args())
	if err != nil {
		fatalf("reading input: %v", err)
	}

	var opt decaf.ParseOpt
	switch dup {
	case "last":
	case "reject":
		opt.OnDuplicate = decaf.DupReject
	default:
		fmt.Fprintf(os.Stderr, "unknown -dup value %q\n", dup)
		fs.Usage()
		os.Exit(2)
	}

	var v decaf.Value
	switch format {
	case "json":
		v, err = decaf.ParseJSON(data, opt)
	case "yaml":
		v, err = yamlsrc.Parse(data)
	case "cbor":
		v, err = cborsrc.Parse(data)
	default:
		fmt.Fprintf(os.Stderr, "unknown -format value %q\n", format)
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		renderParseFailure(err)
		os.Exit(1)
	}

	if pointer != "" {
		path, perr := decaf.ParsePointer(pointer)
		if perr != nil {
			fatalf("bad -p pointer: %v", perr)
		}
		r := v.At(path)
		sub, ok := r.Get()
		if !ok {
			renderErrors(r.Err())
			os.Exit(1)
		}
		v = sub
	}

	out, err := renderValue(v, compact)
	if err != nil {
		fatalf("encoding output: %v", err)
	}
	fmt.Println(string(out))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "decaf reads a JSON, YAML or CBOR document and prints it as JSON.\n\nUsage:\n  decaf [flags] [file]\n\nWith no file argument (or with \"-\"), the document is read from stdin.\n\nFlags:")
		fs.PrintDefaults()
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func renderValue(v decaf.Value, compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

func renderParseFailure(err error) {
	var pe *decaf.ParseError
	if errors.As(err, &pe) {
		if pe.Offset >= 0 {
			fmt.Fprintf(os.Stderr, "%s: %s (offset %d)\n", i18n.T("parse_error", nil), pe.Msg, pe.Offset)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %s\n", i18n.T("parse_error", nil), pe.Msg)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T("parse_error", nil), err)
}

func renderErrors(errs decaf.Errors) {
	for _, e := range errs {
		path := e.Path.String()
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(os.Stderr, "%s at %s (expected %s, found %s)\n", i18n.T(e.Code, nil), path, e.Expected, e.Actual)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
