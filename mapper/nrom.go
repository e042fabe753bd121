package mapper

import "nescore/cartridge"

// NROM is mapper 0: PRG-RAM mirrored to fill 0x6000-0x7FFF, and a fixed
// PRG-ROM window at 0x8000-0xFFFF. A 16 KiB PRG-ROM (NROM-128) mirrors
// across both halves of that window; a 32 KiB PRG-ROM (NROM-256) fills
// it exactly, so the two halves are distinct.
type NROM struct{}

func (NROM) Read(c *cartridge.Cartridge, addr uint16) byte {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		if len(c.PRGRAM) == 0 {
			return 0
		}
		return c.PRGRAM[(addr-0x6000)%uint16(len(c.PRGRAM))]
	case addr >= 0x8000:
		if len(c.PRGROM) == 0 {
			return 0
		}
		return c.PRGROM[(addr-0x8000)%uint16(len(c.PRGROM))]
	default:
		return 0
	}
}

func (NROM) Write(c *cartridge.Cartridge, addr uint16, value byte) {
	if addr >= 0x6000 && addr <= 0x7FFF && len(c.PRGRAM) > 0 {
		c.PRGRAM[(addr-0x6000)%uint16(len(c.PRGRAM))] = value
	}
	// Writes to 0x8000-0xFFFF target ROM and are dropped.
}
