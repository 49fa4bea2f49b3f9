// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/gui/sdlinvaders"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpm"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/invaders"
	"github.com/jetsetilly/gopher8080/hardware/memory/flat"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/paths"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/romloader"
	"github.com/jetsetilly/gopher8080/statsview"
	"github.com/jetsetilly/gopher8080/version"
)

// SDL requires that window and event handling happens on the main thread.
// locking the thread in init() guarantees that main() runs on it.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "IMAGE", "INVADERS", "PERFORMANCE")

	showVersion := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "IMAGE":
		err = image(md)

	case "INVADERS":
		err = playInvaders(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		if curated.Is(err, cpm.ErrTestsFailed) {
			fmt.Printf("* %s\n", err)
			os.Exit(30)
		}
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// interruptCheck returns a continueCheck function for hardware.Run() that
// ends the emulation on ctrl-c. The returned stop function should be called
// once the emulation has finished.
func interruptCheck() (func() (bool, error), func()) {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	brake := 0

	check := func() (bool, error) {
		brake++
		if brake < hardware.PerformanceBrake {
			return true, nil
		}
		brake = 0

		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	}

	return check, func() { signal.Stop(intChan) }
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	raw := md.AddBool("raw", false, "do not put the terminal into cbreak mode")
	dot := md.AddBool("dot", false, "write a DOT graph of the CPU state on completion")
	errorRoutine := md.AddAddress("errorroutine", 0, "address of the CPU test error routine (eg. 0x0689 for cpudiag)")

	md.AdditionalHelp("The program is loaded at 0x0100 and run under a minimal CP/M environment.\nBDOS functions 1, 2, 6, 9, 11 and 12 are supported.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CP/M program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	program, err := romloader.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	var console cpm.Console
	if *raw {
		console = cpm.NewConsole(os.Stdin, os.Stdout)
	} else {
		tc, err := cpm.NewTerminalConsole(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer tc.Close()
		console = tc
	}

	brd := cpm.NewBoard(program, console)
	if *errorRoutine != 0 {
		brd.SetErrorRoutine(*errorRoutine)
	}

	m := hardware.Install(brd)
	defer m.Close()

	check, stop := interruptCheck()
	defer stop()

	err = m.Run(check)

	if *dot {
		fn := paths.UniqueFilename("memviz", shortName(md.GetArg(0)))
		if dotErr := writeDot(fn, m.State(), m.CPU.LastResult); dotErr != nil {
			logger.Log(logger.Allow, "memviz", dotErr)
		} else {
			fmt.Printf("! CPU state written to %s\n", fn)
		}
	}

	if brd.Discarded() > 0 {
		logger.Logf(logger.Allow, "cpm", "%d writes below %#04x were discarded", brd.Discarded(), cpm.ProgramOrigin)
	}

	return err
}

func image(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("memory image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := romloader.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	m, err := hardware.NewFromImage(data)
	if err != nil {
		return err
	}

	check, stop := interruptCheck()
	defer stop()

	err = m.Run(check)
	if err != nil {
		return err
	}

	fmt.Println(m.String())
	fmt.Printf("cycles: %d\n", m.Cycles)

	brd := m.DefaultBoard()
	for port := 0; port < flat.NumPorts; port++ {
		if v := brd.PeekOutput(uint8(port)); v != 0 {
			fmt.Printf("port %#02x: %#02x\n", port, v)
		}
	}

	return nil
}

func playInvaders(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 3, "window scaling")
	sampleDir := md.AddString("samples", paths.ResourcePath("samples"), "directory containing sound samples")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp("ROM files are concatenated in the order given. For example:\n\n\tINVADERS invaders.h invaders.g invaders.f invaders.e")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("ROM files required for %s mode", md)
	}

	rom, err := romloader.LoadSet(md.RemainingArgs()...)
	if err != nil {
		return err
	}

	brd, err := invaders.NewBoard(rom)
	if err != nil {
		return err
	}

	m := hardware.Install(brd)
	defer m.Close()

	gui, err := sdlinvaders.NewSdlInvaders(m, brd, *scale, *sampleDir)
	if err != nil {
		return err
	}
	defer gui.Destroy()

	return gui.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CP/M program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	program, err := romloader.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	// console output is discarded. the measurement is of the CPU only
	brd := cpm.NewBoard(program, cpm.NewConsole(strings.NewReader(""), io.Discard))

	m := hardware.Install(brd)
	defer m.Close()

	err = performance.Check(os.Stdout, prf, m, *duration)
	if err != nil && !curated.Is(err, cpm.ErrTestsFailed) {
		return err
	}

	return nil
}

// the snapshot of the CPU written by writeDot().
type dotState struct {
	State      registers.State
	LastResult execution.Result
}

func writeDot(filename string, state registers.State, result execution.Result) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, &dotState{State: state, LastResult: result})

	return nil
}

func shortName(filename string) string {
	s := filepath.Base(filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}
