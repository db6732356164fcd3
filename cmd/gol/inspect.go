package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/spf13/cobra"

	"bitlife/internal/config"
)

func newInspectCmd(opts *options) *cobra.Command {
	var (
		out   string
		graph bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "print the engine's memory layout and optionally a graphviz dump of it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := inspect(opts.cfg, cmd.OutOrStdout()); err != nil {
				return err
			}
			if !graph {
				return nil
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			return dumpGraph(opts.cfg, f)
		},
	}
	cmd.Flags().BoolVar(&graph, "graph", false, "write a graphviz dot file of the engine structure")
	cmd.Flags().StringVarP(&out, "out", "o", "engine.dot", "dot output path for --graph")
	return cmd
}

// inspect prints the facts of the engine's shared view.
func inspect(cfg *config.Config, w io.Writer) error {
	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	v := engine.View()
	fmt.Fprintf(w, "dimensions:  %dx%d\n", v.Width(), v.Height())
	fmt.Fprintf(w, "cells:       %d\n", v.Size())
	fmt.Fprintf(w, "bytes:       %d (LSB-first, index = row*width+col)\n", v.ByteLength())
	fmt.Fprintf(w, "padding:     %d bits\n", v.ByteLength()*8-v.Size())
	fmt.Fprintf(w, "population:  %d\n", engine.Population())
	fmt.Fprintf(w, "ticks:       %d\n", engine.Ticks())
	return nil
}

// dumpGraph writes the engine's pointer graph in graphviz format.
func dumpGraph(cfg *config.Config, w io.Writer) error {
	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	memviz.Map(w, engine)
	return nil
}
