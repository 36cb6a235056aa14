package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// validateCommand reports whether each input decodes.
type validateCommand struct {
	flags *decoderFlags
	files *[]string
}

func (cmd *validateCommand) run(c *kingpin.ParseContext) error {
	dec, _, err := cmd.flags.decoder()
	if err != nil {
		return err
	}
	inputs, err := readInputs(*cmd.files)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	failed := 0
	for _, in := range inputs {
		if _, err := dec.DecodeBytes(in.data); err != nil {
			failed++
			printDecodeError(os.Stdout, in.name, err)
			continue
		}
		green.Printf("%s: ok", in.name)
		fmt.Printf(" (%s)\n", humanize.Bytes(uint64(len(in.data))))
	}
	if failed > 0 {
		return errors.Errorf("%d of %d inputs are invalid", failed, len(inputs))
	}
	return nil
}

func addValidateCommand(app *kingpin.Application, flags *decoderFlags) {
	cmd := &validateCommand{flags: flags}
	validate := app.Command("validate", "Check that documents decode.").Action(cmd.run)
	cmd.files = validate.Arg("file", "Documents to validate; stdin if none.").ExistingFiles()
}
