/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

// Command gcnrepl is an interactive line-at-a-time front end to the
// assembler: every accepted line is appended to the session buffer and the
// whole buffer is re-assembled, so a `.regvar`/`.arch` typed earlier in the
// session still applies to what is typed next.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcnasm"
	"github.com/gcntools/gcnasm/internal/gcncatalog"
)

func mnemonicNames() []string {
	entries := gcncatalog.Get().All()
	names := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !seen[e.Mnemonic] {
			seen[e.Mnemonic] = true
			names = append(names, e.Mnemonic)
		}
	}
	return names
}

func main() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	names := mnemonicNames()
	line.SetCompleter(func(partial string) []string {
		var out []string
		for _, n := range names {
			if strings.HasPrefix(n, partial) {
				out = append(out, n)
			}
		}
		return out
	})

	var buf strings.Builder
	fmt.Println("gcnrepl: type an instruction, a directive, or :quit")

	for {
		text, err := line.Prompt("gcnasm> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			fmt.Println("error reading line:", err)
			return
		}
		line.AppendHistory(text)

		trimmed := strings.TrimSpace(text)
		switch trimmed {
		case ":quit", ":q":
			return
		case ":reset":
			buf.Reset()
			continue
		case "":
			continue
		}

		candidate := buf.String() + text + "\n"
		as := gcnasm.New(gcnarch.GCN_1_2, "<repl>")
		result, err := as.Assemble(candidate)
		if err != nil {
			for _, d := range result.Diagnostics {
				fmt.Println(d.Error())
			}
			continue
		}
		buf.WriteString(text)
		buf.WriteByte('\n')

		for _, w := range result.Code {
			fmt.Printf("  %08x\n", w)
		}
	}
}
