// Command debugger wires a cartridge, a mapper and a CPU together and
// drops into the interactive single-step TUI. It takes no arguments;
// loading a real ROM file is out of scope, so it runs a CPU against a
// small built-in PRG-ROM image useful for poking at the interpreter.
package main

import (
	"fmt"
	"os"

	"nescore/bus"
	"nescore/cartridge"
	"nescore/cpu"
	"nescore/mapper"
)

func main() {
	prgROM := make([]byte, 32*1024)
	// Reset vector points at 0x8000, the start of PRG-ROM.
	prgROM[0x7FFC] = 0x00
	prgROM[0x7FFD] = 0x80

	cart := cartridge.New(prgROM, nil, 0)
	m, err := mapper.New(cart.MapperID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	b := bus.New(cart, m)
	c := cpu.New(b)

	cpu.Debug(c)
}
