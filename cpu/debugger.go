package cpu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nescore/mask"
)

// model drives an interactive, single-step view of a running CPU: press
// space/j to execute one instruction, q to quit.
type model struct {
	cpu *CPU

	prevPC uint16
	err    error
}

// Init is the first function bubbletea calls. There is no setup to do
// beyond what New already performed, so it returns no command.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key presses: a step key runs one CPU.Step, q quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func flagMarker(set bool) string {
	if set {
		return "/ "
	}
	return "  "
}

// flagLine renders the 8 status bits as a row of lit/unlit markers,
// reading each one out of P via mask.IsSet instead of keeping a
// parallel slice of booleans the way the raw-RAM viewer this TUI
// replaced did.
func (m model) flagLine() string {
	p := m.cpu.P
	return flagMarker(mask.IsSet(p, mask.I1)) +
		flagMarker(mask.IsSet(p, mask.I2)) +
		flagMarker(mask.IsSet(p, mask.I3)) +
		flagMarker(mask.IsSet(p, mask.I4)) +
		flagMarker(mask.IsSet(p, mask.I5)) +
		flagMarker(mask.IsSet(p, mask.I6)) +
		flagMarker(mask.IsSet(p, mask.I7)) +
		flagMarker(mask.IsSet(p, mask.I8))
}

func (m model) status() string {
	return fmt.Sprintf(`
PC: %04x (prev %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
 P: %02x
N V _ B D I Z C
%s
cycles: %d
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, m.cpu.P,
		m.flagLine(),
		m.cpu.CyclesRemaining,
	)
}

func (m model) nextOpcode() string {
	b := m.cpu.Bus.Read(m.cpu.PC)
	inst := opcodeTable[b]
	if inst == nil {
		return fmt.Sprintf("0x%02x: unknown opcode", b)
	}
	return spew.Sdump(inst)
}

// View renders the UI, re-rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.status(),
		"",
		m.nextOpcode(),
	)
}

// Debug starts an interactive single-step TUI over an already-wired
// CPU (its Bus must already hold whatever program the caller wants to
// inspect).
func Debug(c *CPU) {
	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		panic(err)
	}
	final := m.(model)
	if final.err != nil {
		fmt.Println("error:", final.err)
	}
}
