//go:build !no_pprof

package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"fortio.org/log"
)

var (
	cpuProfile = flag.String("profile-cpu", "", "write cpu profile of the run to `file`")
	memProfile = flag.String("profile-mem", "", "write heap profile at the end of the run to `file`")
	cpuOut     *os.File
)

func init() {
	hookBefore = startProfiling
	hookAfter = stopProfiling
}

func startProfiling() int {
	if *cpuProfile == "" {
		return 0
	}
	var err error
	cpuOut, err = os.Create(*cpuProfile)
	if err != nil {
		return log.FErrf("Error in %s: %v", *cpuProfile, err)
	}
	if err = pprof.StartCPUProfile(cpuOut); err != nil {
		return log.FErrf("can't start cpu profile: %v", err)
	}
	log.Infof("Writing cpu profile to %s", *cpuProfile)
	return 0
}

func stopProfiling() int {
	if cpuOut != nil {
		pprof.StopCPUProfile()
		cpuOut.Close()
	}
	if *memProfile == "" {
		return 0
	}
	f, err := os.Create(*memProfile)
	if err != nil {
		return log.FErrf("Error in %s: %v", *memProfile, err)
	}
	defer f.Close()
	if err = pprof.WriteHeapProfile(f); err != nil {
		return log.FErrf("can't write mem profile: %v", err)
	}
	log.Infof("Wrote memory profile to %s", *memProfile)
	return 0
}
