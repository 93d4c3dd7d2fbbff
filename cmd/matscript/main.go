package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/log"

	"github.com/matscript/matscript/backend"
	"github.com/matscript/matscript/common"
	"github.com/matscript/matscript/mat"
	"github.com/matscript/matscript/script"
	"github.com/matscript/matscript/wrapper"
)

var (
	scriptFile  = flag.String("script", "", "Script file to run, an interactive shell is started when empty.")
	evalCode    = flag.String("eval", "", "Inline code to evaluate instead of a script file.")
	imageFile   = flag.String("image", "", "Image to load and expose to the script as the img global.")
	historyFile = flag.String("history", "~/.matscript_history", "Interactive shell history file.")
	logFile     = flag.String("log-file", "", "If filled, matscript will log to this file.")
	logDebug    = flag.Bool("debug", false, "Enable debug logs.")

	// stats

	cpuProfile = flag.String("cpu-profile", "", "Write CPU profile to this file.")
	memProfile = flag.String("mem-profile", "", "Write memory profile to this file.")
)

func memReport() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Debug("mem:%s numgc:%d", humanize.Bytes(m.Sys), m.NumGC)
}

func runOnce(vm *script.VM, code string) {
	_, val, err := vm.RunWithContext(code)
	if err != nil {
		log.Fatal("%v", err)
	}

	exported, err := val.Export()
	if err != nil || exported == nil {
		return
	}
	if raw, err := json.Marshal(exported); err == nil {
		fmt.Printf("%s\n", raw)
	}
}

func main() {
	flag.Parse()

	common.StartProfiling(cpuProfile)

	common.SetupSignals(func(_ os.Signal) { common.DoCleanup(cpuProfile, memProfile) })

	common.SetupLogging(logFile, logDebug)
	defer common.TeardownLogging()

	log.Info("matscript v%s is starting (backend:%s space:%s) ...",
		script.Version,
		backend.Name(),
		humanize.Bytes(backend.Space()))

	vm := script.NewVM()

	if *imageFile != "" {
		img, err := imaging.Open(*imageFile)
		if err != nil {
			log.Fatal("cannot open %s: %v", *imageFile, err)
		}
		m := mat.FromImage(img)
		vm.Set("img", wrapper.WrapMat(m))
		log.Info("loaded %s as a %dx%d %s mat", *imageFile, m.Rows(), m.Cols(), m.Type())
	}

	if *scriptFile != "" {
		code, err := ioutil.ReadFile(*scriptFile)
		if err != nil {
			log.Fatal("cannot read %s: %v", *scriptFile, err)
		}
		runOnce(vm, string(code))
	} else if *evalCode != "" {
		runOnce(vm, *evalCode)
	} else {
		repl(vm)
	}

	memReport()
}
