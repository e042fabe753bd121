// Package mapper translates CPU addresses in 0x6000-0xFFFF into offsets
// into a cartridge's PRG-ROM/PRG-RAM, the way a real NES cartridge board
// does it in hardware.
package mapper

import (
	"fmt"

	"nescore/cartridge"
)

// Mapper is the address-translation contract a cartridge board implements.
// Read and Write only ever see addresses the bus has already restricted
// to the cartridge's window; anything outside it is the bus's concern,
// not the mapper's.
type Mapper interface {
	Read(c *cartridge.Cartridge, addr uint16) byte
	Write(c *cartridge.Cartridge, addr uint16, value byte)
}

// New looks up a mapper by its iNES mapper number. Only mapper 0 (NROM)
// is implemented; everything else is a slot reserved for later boards
// (MMC1, UxROM, CNROM, MMC3 and friends all show up as mapper IDs in the
// wild, but none of them are wired here).
func New(mapperID int) (Mapper, error) {
	switch mapperID {
	case 0:
		return NROM{}, nil
	default:
		return nil, fmt.Errorf("mapper: unsupported mapper id %d", mapperID)
	}
}
