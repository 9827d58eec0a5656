/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcndisasm"
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
	optHex := getopt.BoolLong("hex", 'x', "Prefix each line with its raw code word(s)")
	optOffsets := getopt.BoolLong("offsets", 'p', "Prefix each line with its byte offset")
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
		fmt.Fprintln(os.Stderr, "usage: gcndisasm [options] <binary>")
		os.Exit(1)
	}

	arch, ok := archNames[*optArch]
	if !ok {
		slog.Error("unknown architecture", "arch", *optArch)
		os.Exit(1)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		slog.Error("reading input", "error", err.Error())
		os.Exit(1)
	}
	if len(raw)%4 != 0 {
		slog.Error("input is not a whole number of 32-bit words")
		os.Exit(1)
	}
	code := make([]uint32, len(raw)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}

	d := gcndisasm.New(code, arch, nil)
	scan, err := d.Scan()
	if err != nil {
		slog.Error("scanning code", "error", err.Error())
		os.Exit(1)
	}
	lines := d.Format(scan, gcndisasm.Options{HexPrefix: *optHex, CodePosPrefix: *optOffsets})
	for _, l := range lines {
		fmt.Println(l)
	}
}
