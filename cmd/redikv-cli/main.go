/*
Copyright (C) 2026  redikv contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// redikv-cli is an interactive RESP client for manual diagnostics,
// grounded on the teacher's scm.Repl: a readline loop that sends one
// command per line and prints the reply.
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rahulkeshervani/redikv/resp"
)

const (
	prompt      = "\033[32mredikv>\033[0m "
	resultColor = "\033[31m=\033[0m "
)

func main() {
	addr := flag.String("addr", "127.0.0.1:6379", "server address")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Printf("redikv-cli: %v\n", err)
		return
	}
	defer conn.Close()
	rc := resp.NewConn(conn)

	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       ".redikv-cli-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	fmt.Printf("connected to %s\n", *addr)
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := splitFields(line)
		frames := make([]resp.Frame, len(args))
		for i, a := range args {
			frames[i] = resp.Bulk([]byte(a))
		}
		if err := rc.WriteFrame(resp.Array(frames...)); err != nil {
			fmt.Printf("redikv-cli: write failed: %v\n", err)
			return
		}
		if err := rc.Flush(); err != nil {
			fmt.Printf("redikv-cli: flush failed: %v\n", err)
			return
		}

		reply, err := rc.ReadFrame()
		if err != nil {
			fmt.Printf("redikv-cli: connection closed: %v\n", err)
			return
		}
		fmt.Print(resultColor)
		fmt.Println(reply.String())
	}
}

// splitFields is a minimal whitespace tokenizer; quoting is out of scope
// for a diagnostics REPL.
func splitFields(line string) []string {
	return strings.Fields(line)
}
