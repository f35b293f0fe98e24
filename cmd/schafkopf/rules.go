package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/schafkopf/internal/display"
)

// RulesCmd prints the rules after applying the rules file.
type RulesCmd struct {
	out io.Writer `kong:"-"`
}

func (cmd *RulesCmd) Run(g *Globals) error {
	cfg, _, err := g.setup()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer(cmd.out), display.Rules(cfg.Rules))
	return err
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
