// Package cartridge holds the PRG-ROM/PRG-RAM image a mapper addresses.
// Parsing an iNES file into one of these is out of scope here; callers
// construct a Cartridge directly from already-decoded PRG data.
package cartridge

// PRGRAMSize is the window size the CPU bus exposes at 0x6000-0x7FFF.
// Real boards ship anywhere from 2 KiB to 8 KiB of battery-backed RAM;
// New defaults to the common 8 KiB window and lets mappers mirror down.
const PRGRAMSize = 8 * 1024

// Cartridge is the mutable state behind a mapper: PRG-ROM is treated as
// read-only by every mapper, PRG-RAM is read/write.
type Cartridge struct {
	PRGROM   []byte
	PRGRAM   []byte
	CHR      []byte
	MapperID int
}

// New builds a Cartridge with a freshly allocated PRG-RAM window.
func New(prgROM, chr []byte, mapperID int) *Cartridge {
	return &Cartridge{
		PRGROM:   prgROM,
		PRGRAM:   make([]byte, PRGRAMSize),
		CHR:      chr,
		MapperID: mapperID,
	}
}

// NewWithRAM builds a Cartridge with caller-supplied PRG-RAM, for tests
// that want to control its size (e.g. the 2 KiB mirroring case) or for
// battery-backed saves loaded from disk.
func NewWithRAM(prgROM, prgRAM, chr []byte, mapperID int) *Cartridge {
	return &Cartridge{
		PRGROM:   prgROM,
		PRGRAM:   prgRAM,
		CHR:      chr,
		MapperID: mapperID,
	}
}
