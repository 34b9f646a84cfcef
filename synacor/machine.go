package synacor

// MemSize is the fixed size of the VM's address space, in words.
const MemSize = 32768

// Machine is a single Synacor-architecture VM instance. It owns its
// memory, registers, and stack exclusively; multiple Machines may
// coexist without interference.
type Machine struct {
	memory [MemSize]uint16
	regs   [numRegs]uint16
	pc     uint16
	stack  *Stack

	out ByteSink
	in  ByteSource

	halted bool
}

// NewMachine constructs an empty machine with the given I/O ports. Use
// Init or Load to populate memory before calling Run.
func NewMachine(out ByteSink, in ByteSource) *Machine {
	return &Machine{
		stack: NewStack(),
		out:   out,
		in:    in,
	}
}

// Halted reports whether the machine has terminated normally.
func (m *Machine) Halted() bool {
	return m.halted
}

// PC returns the current program counter, mostly useful for tests and
// post-mortem error reporting by callers.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Register returns the current value of register i (0..=7).
func (m *Machine) Register(i int) uint16 {
	return m.regs[i]
}
