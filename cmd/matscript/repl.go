package main

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/fs"
	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"
	"github.com/evilsocket/islazy/tui"

	"github.com/matscript/matscript/script"
)

func repl(vm *script.VM) {
	histPath, err := fs.Expand(*historyFile)
	if err != nil {
		histPath = ""
	}

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          "matscript> ",
		HistoryFile:     histPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal("%v", err)
	}
	defer reader.Close()

	fmt.Printf("matscript v%s interactive shell, type exit or ^D to quit\n\n", script.Version)

	for {
		line, err := reader.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			log.Error("%v", err)
			break
		}

		line = str.Trim(line)
		if line == "" {
			continue
		} else if line == "exit" || line == "quit" {
			break
		}

		_, val, err := vm.RunWithContext(line)
		if err != nil {
			fmt.Printf("%s\n", tui.Red(err.Error()))
			continue
		}

		if !val.IsUndefined() {
			fmt.Printf("%s\n", val.String())
		}
	}
}
