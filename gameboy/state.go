package gameboy

import (
	"encoding/gob"
	"os"

	"github.com/meadori/dotmatrix/bus"
	"github.com/meadori/dotmatrix/cpu"
)

type State struct {
	CPU cpu.State
	Bus bus.State
}

// SaveState saves the entire machine state to a file.
func (g *GameBoy) SaveState(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	s := State{
		CPU: g.CPU.SaveState(),
		Bus: g.Bus.SaveState(),
	}
	return gob.NewEncoder(file).Encode(s)
}

// LoadState restores the machine state from a file. The same cartridge
// must already be loaded.
func (g *GameBoy) LoadState(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var s State
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return err
	}
	g.CPU.LoadState(s.CPU)
	return g.Bus.LoadState(s.Bus)
}
