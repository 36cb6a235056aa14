package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/addrummond/strictjson"
)

// decodeCommand prints the decoded value of each input.
type decodeCommand struct {
	flags  *decoderFlags
	files  *[]string
	format *string
}

func (cmd *decodeCommand) run(c *kingpin.ParseContext) error {
	dec, logger, err := cmd.flags.decoder()
	if err != nil {
		return err
	}
	inputs, err := readInputs(*cmd.files)
	if err != nil {
		return err
	}

	failed := 0
	for _, in := range inputs {
		v, err := dec.DecodeBytes(in.data)
		if err != nil {
			failed++
			printDecodeError(os.Stderr, in.name, err)
			continue
		}
		level.Info(logger).Log("msg", "decoded", "input", in.name, "kind", v.Kind())
		if len(inputs) > 1 {
			color.New(color.Bold).Printf("%s:\n", in.name)
		}
		if *cmd.format == "spew" {
			spew.Fdump(os.Stdout, v)
			continue
		}
		writeTree(os.Stdout, v)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed to decode", failed, len(inputs))
	}
	return nil
}

func addDecodeCommand(app *kingpin.Application, flags *decoderFlags) {
	cmd := &decodeCommand{flags: flags}
	decode := app.Command("decode", "Decode documents and print the value tree.").Default().Action(cmd.run)
	cmd.format = decode.Flag("format", "Output format.").Default("tree").Enum("tree", "spew")
	cmd.files = decode.Arg("file", "Documents to decode; stdin if none.").ExistingFiles()
}

// writeTree prints v with one line per scalar, indented by nesting.
func writeTree(w io.Writer, v strictjson.Value) {
	writeNode(w, v, 0)
}

func writeNode(w io.Writer, v strictjson.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind() {
	case strictjson.KindArray:
		fmt.Fprintf(w, "array(%d)\n", v.Len())
		for i, e := range v.Elems() {
			fmt.Fprintf(w, "%s  [%d] ", indent, i)
			writeNode(w, e, depth+1)
		}
	case strictjson.KindObject:
		fmt.Fprintf(w, "object(%d)\n", v.Len())
		for _, m := range v.Members() {
			fmt.Fprintf(w, "%s  %s: ", indent, m.Key)
			writeNode(w, m.Value, depth+1)
		}
	case strictjson.KindMatrix:
		m := v.Matrix()
		fmt.Fprintf(w, "matrix %dx%d of %v\n", m.Rows, m.Cols, m.Elem)
		for i := 0; i < m.Rows; i++ {
			cells := make([]string, m.Cols)
			for j := range cells {
				cells[j] = m.At(i, j).String()
			}
			fmt.Fprintf(w, "%s  %s\n", indent, strings.Join(cells, " "))
		}
	case strictjson.KindRecordList:
		r := v.Records()
		fmt.Fprintf(w, "records(%d) %s\n", len(r.Records), strings.Join(r.Fields, ", "))
		for i := range r.Records {
			fmt.Fprintf(w, "%s  [%d] ", indent, i)
			writeNode(w, v.Index(i), depth+1)
		}
	case strictjson.KindString:
		fmt.Fprintln(w, strconv.Quote(v.Str()))
	default:
		fmt.Fprintln(w, v.String())
	}
}
