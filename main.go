// Mainlang is a minimal line oriented interpreter: let, function, if,
// print and asm commands over a small expression language.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"fortio.org/cli"
	"fortio.org/duration"
	"fortio.org/log"
	"fortio.org/terminal"
	"mainlang.io/mainlang/interp"
	"mainlang.io/mainlang/repl"
)

func main() {
	os.Exit(Main())
}

var hookBefore, hookAfter func() int

func Main() int {
	var inline []string
	flag.Func("c", "command/inline `line` to run instead of interactive mode (can be repeated, one line each)",
		func(line string) error {
			inline = append(inline, line)
			return nil
		})
	showParse := flag.Bool("parse", false, "show the parsed form of each line before running it")
	configFile := flag.String("config", "", "YAML config `file` (history_file, max_depth, max_steps)")
	historyFile := flag.String("history", historyDefault, "history `file` to use")
	maxHistory := flag.Int("max-history", terminal.DefaultHistoryCapacity, "max history `size`, use 0 to disable.")
	disableLoadSave := flag.Bool("no-load-save", false, "disable load/save of history")
	maxDepth := flag.Int("max-depth", interp.DefaultMaxDepth, "Maximum nesting of procedure calls and if statements")
	maxSteps := flag.Int("max-steps", interp.DefaultMaxSteps,
		"Maximum statements executed for one top level line, 0 for unlimited")
	panicOk := flag.Bool("panic", false, "Don't catch panic - only for development/debugging")
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	cli.ArgsHelp = "files to run or `-` for stdin without prompt or no arguments for stdin repl..."
	cli.MaxArgs = -1
	cli.Main()
	cfg, err := ResolveConfig(flag.CommandLine, *configFile, map[string]func(*Config){
		"history":   func(c *Config) { c.HistoryFile = *historyFile },
		"max-depth": func(c *Config) { c.MaxDepth = *maxDepth },
		"max-steps": func(c *Config) { c.MaxSteps = *maxSteps },
	})
	if err != nil {
		return log.FErrf("Error in configuration: %v", err)
	}
	log.Infof("mainlang %s - welcome!", cli.LongVersion)
	log.LogVf("Config: %+v", cfg)
	options := repl.Options{
		ShowParse:  *showParse,
		MaxDepth:   cfg.MaxDepth,
		MaxSteps:   cfg.MaxSteps,
		MaxHistory: *maxHistory,
		PanicOk:    *panicOk,
	}
	if !*disableLoadSave {
		options.HistoryFile = cfg.HistoryPath()
	}
	if hookBefore != nil {
		ret := hookBefore()
		if ret != 0 {
			return ret
		}
	}
	start := time.Now()
	ret := run(inline, flag.Args(), options)
	log.Infof("All done in %v", duration.Duration(time.Since(start)))
	if hookAfter != nil && ret == 0 {
		return hookAfter()
	}
	return ret
}

func run(inline, files []string, options repl.Options) int {
	if len(inline) > 0 {
		fmt.Print(repl.EvalStringWithOption(options, strings.Join(inline, "\n")))
		return 0
	}
	if len(files) == 0 {
		return repl.Interactive(options)
	}
	failed := 0
	for _, file := range files {
		failed += processOneFile(file, options)
	}
	return failed
}

func processOneStream(name string, in io.Reader, options repl.Options) int {
	err := repl.EvalAll(in, os.Stdout, options)
	if err != nil {
		log.Errf("Error in %s: %v", name, err)
		return 1
	}
	return 0
}

func processOneFile(file string, options repl.Options) int {
	if file == "-" {
		log.Infof("Running on stdin")
		return processOneStream("stdin", os.Stdin, options)
	}
	f, err := os.Open(file)
	if err != nil {
		log.Errf("Error in %s: %v", file, err)
		return 1
	}
	defer f.Close()
	log.Infof("Running %s", file)
	return processOneStream(file, f, options)
}
