package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nescore/cartridge"
)

func TestNROMPRGRom128Mirrors(t *testing.T) {
	prgROM := make([]byte, 16*1024)
	for i := range prgROM {
		prgROM[i] = 0xEA
	}
	prgROM[0] = 0xEB

	c := cartridge.NewWithRAM(prgROM, make([]byte, 8*1024), nil, 0)
	m := NROM{}

	assert.Equal(t, byte(0xEB), m.Read(c, 0x8000))
	assert.Equal(t, byte(0xEB), m.Read(c, 0xC000))
}

func TestNROMPRGRom256DistinctHalves(t *testing.T) {
	prgROM := make([]byte, 32*1024)
	for i := range prgROM {
		prgROM[i] = 0xEA
	}
	prgROM[0] = 0xEB
	prgROM[0x4000] = 0xEC

	c := cartridge.NewWithRAM(prgROM, make([]byte, 8*1024), nil, 0)
	m := NROM{}

	assert.Equal(t, byte(0xEB), m.Read(c, 0x8000))
	assert.Equal(t, byte(0xEC), m.Read(c, 0xC000))
}

func TestNROMPRGRamRead(t *testing.T) {
	prgRAM := make([]byte, 8*1024)
	for i := range prgRAM {
		prgRAM[i] = 0xEA
	}
	prgRAM[0] = 0xEB
	prgRAM[8191] = 0xEC

	c := cartridge.NewWithRAM(make([]byte, 16*1024), prgRAM, nil, 0)
	m := NROM{}

	assert.Equal(t, byte(0xEB), m.Read(c, 0x6000))
	assert.Equal(t, byte(0xEC), m.Read(c, 0x7FFF))
}

func TestNROMPRGRamWrite(t *testing.T) {
	c := cartridge.NewWithRAM(nil, make([]byte, 8*1024), nil, 0)
	m := NROM{}

	m.Write(c, 0x6001, 0xFF)

	assert.Equal(t, byte(0xFF), c.PRGRAM[1])
}

func TestNROMPRGRamWriteMirrored(t *testing.T) {
	c := cartridge.NewWithRAM(nil, make([]byte, 2*1024), nil, 0)
	m := NROM{}

	m.Write(c, 0x6000, 0xFF)
	assert.Equal(t, byte(0xFF), c.PRGRAM[0])
	assert.Equal(t, byte(0xFF), m.Read(c, 0x6800))
}

func TestNROMPRGRomWriteIsDropped(t *testing.T) {
	prgROM := make([]byte, 16*1024)
	for i := range prgROM {
		prgROM[i] = 0xEA
	}
	prgRAM := make([]byte, 8*1024)
	c := cartridge.NewWithRAM(prgROM, prgRAM, nil, 0)
	m := NROM{}

	m.Write(c, 0x8001, 0xFF)

	for _, b := range c.PRGRAM {
		assert.Equal(t, byte(0), b)
	}
	for _, b := range c.PRGROM {
		assert.Equal(t, byte(0xEA), b)
	}
}

func TestNewUnsupportedMapper(t *testing.T) {
	_, err := New(4)
	assert.Error(t, err)
}

func TestNewMapperZero(t *testing.T) {
	m, err := New(0)
	assert.NoError(t, err)
	assert.IsType(t, NROM{}, m)
}
