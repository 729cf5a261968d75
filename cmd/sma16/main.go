package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hwsim/sma16/cpu"
	"github.com/hwsim/sma16/emulator"
)

const version_string = "sma16 v0.1"

func main() {
	var compile string
	var output string
	var save bool
	var stack int
	var nofault bool
	var debug bool
	var timed bool
	var version bool

	flag.StringVar(&compile, "c", "", "assembly source to compile")
	flag.StringVar(&output, "o", "", "memory image file to write")
	flag.BoolVar(&save, "s", false, "save the memory image, do not execute")
	flag.IntVar(&stack, "stack", 0, "hardware stack depth (0 = software stack)")
	flag.BoolVar(&nofault, "noop-reserved", false, "treat reserved opcodes as no-ops")
	flag.BoolVar(&debug, "d", false, "display debug information")
	flag.BoolVar(&timed, "t", false, "display timing information")
	flag.BoolVar(&version, "v", false, "display version")

	flag.Parse()

	if version {
		fmt.Println(version_string)
		return
	}

	emu := emulator.NewEmulator(stack)
	emu.Machine.ReservedNop = nofault

	var prog *cpu.Program

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		asm := &cpu.Assembler{}
		for attr, val := range emu.Defines() {
			asm.Predefine(attr, val)
		}
		prog, err = asm.Parse(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Program = prog
	case flag.NArg() == 1:
		inf, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}

		emu.Reset()
		err = emu.Machine.LoadImage(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}
	default:
		log.Fatalf("%v: no input file", os.Args[0])
	}

	if prog != nil {
		emu.Reset()
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		err = emu.Machine.SaveImage(ouf)
		if err == nil {
			err = ouf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if save {
		return
	}

	emu.Ascii.Output = os.Stdout
	emu.Small.Output = os.Stdout
	emu.Trace = os.Stdout
	emu.Verbose = debug

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		for range sigs {
			emu.Stop()
		}
	}()

	interactive := isTerminal(os.Stdin) && isTerminal(os.Stdout)

	for {
		if debug {
			emu.TraceHeader()
		}

		start := time.Now()
		halted := emu.Run()
		elapsed := time.Since(start)

		if debug {
			emu.TraceFooter()
		}

		if !halted && emu.Stopped() {
			fmt.Println(" USER HALT")
		}

		if !interactive {
			fmt.Println("System halted.")
			return
		}

		if timed {
			fmt.Printf("System halted after %dus.", elapsed.Microseconds())
		} else {
			fmt.Print("System halted.")
		}
		fmt.Println(" Press C to continue, or any other key to exit.")

		key, err := readKey()
		if err != nil {
			log.Fatalf("terminal: %v", err)
		}
		if key != 'C' && key != 'c' {
			return
		}

		emu.Resume()
	}
}
