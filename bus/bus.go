// Package bus implements the CPU-side address bus: the thin router that
// decides whether an address belongs to the cartridge or reads as zero. PPU/APU/controller ranges are out of scope, so everything below
//0x6000 is unmapped here.
package bus

import (
	"nescore/cartridge"
	"nescore/mapper"
)

// Bus routes CPU reads/writes in 0x6000-0xFFFF to the cartridge's mapper.
// Everything else reads zero and drops writes silently.
type Bus struct {
	Cartridge *cartridge.Cartridge
	Mapper    mapper.Mapper
}

// New builds a Bus wired to the given cartridge and mapper.
func New(cart *cartridge.Cartridge, m mapper.Mapper) *Bus {
	return &Bus{Cartridge: cart, Mapper: m}
}

func (b *Bus) Read(addr uint16) byte {
	if addr >= 0x6000 {
		return b.Mapper.Read(b.Cartridge, addr)
	}
	return 0
}

func (b *Bus) Write(addr uint16, value byte) {
	if addr >= 0x6000 {
		b.Mapper.Write(b.Cartridge, addr, value)
	}
}
