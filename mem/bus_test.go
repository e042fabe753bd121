package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusReadWrite(t *testing.T) {
	b := &Bus{}

	b.Write(0x1234, 0xAB)

	assert.Equal(t, byte(0xAB), b.Read(0x1234))
}

func TestBusRecordsAccessOrder(t *testing.T) {
	b := &Bus{}

	b.Write(0x10, 1)
	b.Read(0x20)
	b.Write(0x30, 2)

	assert.Equal(t, []uint16{0x10, 0x30}, b.Writes)
	assert.Equal(t, []uint16{0x20}, b.Reads)
}

func TestBusZeroedOnInit(t *testing.T) {
	b := &Bus{}

	assert.Equal(t, byte(0), b.Read(0x4242))
}
