/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcnasm"
	"github.com/gcntools/gcnasm/util/logger"
)

var archNames = map[string]gcnarch.Arch{
	"gcn1.0": gcnarch.GCN_1_0, "gcn1.1": gcnarch.GCN_1_1,
	"gcn1.2": gcnarch.GCN_1_2, "gcn1.4": gcnarch.GCN_1_4,
	"gcn1.4.1": gcnarch.GCN_1_4_1, "gcn1.5": gcnarch.GCN_1_5,
	"gcn1.5.1": gcnarch.GCN_1_5_1,
}

func main() {
	optArch := getopt.StringLong("arch", 'a', "gcn1.2", "Target architecture (gcn1.0..gcn1.5.1)")
	optOut := getopt.StringLong("output", 'o', "", "Output binary file (default: stdout as hex words)")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	debug := false
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelWarn)
	slog.SetDefault(slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, &debug)))

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: gcnasm [options] <source.s>")
		os.Exit(1)
	}

	arch, ok := archNames[*optArch]
	if !ok {
		slog.Error("unknown architecture", "arch", *optArch)
		os.Exit(1)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		slog.Error("reading source", "error", err.Error())
		os.Exit(1)
	}

	as := gcnasm.New(arch, args[0])
	result, err := as.Assemble(string(src))
	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if err != nil {
		os.Exit(1)
	}

	if *optOut == "" {
		for _, w := range result.Code {
			fmt.Printf("%08x\n", w)
		}
		return
	}

	out, err := os.Create(*optOut)
	if err != nil {
		slog.Error("creating output", "error", err.Error())
		os.Exit(1)
	}
	defer out.Close()

	buf := make([]byte, 4*len(result.Code))
	for i, w := range result.Code {
		buf[i*4+0] = byte(w)
		buf[i*4+1] = byte(w >> 8)
		buf[i*4+2] = byte(w >> 16)
		buf[i*4+3] = byte(w >> 24)
	}
	if _, err := out.Write(buf); err != nil {
		slog.Error("writing output", "error", err.Error())
		os.Exit(1)
	}
}
