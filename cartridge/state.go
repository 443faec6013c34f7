package cartridge

import (
	"bytes"
	"encoding/gob"
)

// State captures the mutable side of a cartridge: external RAM and the
// controller's register file. The ROM image is not part of a savestate;
// loading a state into a different cartridge is the caller's mistake.
type State struct {
	RAM        []byte
	Controller []byte
}

func (c *Cartridge) SaveState() State {
	s := State{RAM: make([]byte, len(c.ram))}
	copy(s.RAM, c.ram)
	if m, ok := c.ctrl.(saver); ok {
		s.Controller = m.save()
	}
	return s
}

func (c *Cartridge) LoadState(s State) error {
	copy(c.ram, s.RAM)
	if m, ok := c.ctrl.(saver); ok {
		return m.load(s.Controller)
	}
	return nil
}

// saver is implemented by controllers with register state worth saving.
type saver interface {
	save() []byte
	load([]byte) error
}

func gobEncode(v interface{}) []byte {
	var buf bytes.Buffer
	gob.NewEncoder(&buf).Encode(v)
	return buf.Bytes()
}

func gobDecode(b []byte, v interface{}) error {
	if len(b) == 0 {
		return nil
	}
	return gob.NewDecoder(bytes.NewReader(b)).Decode(v)
}

// MBC1
type mbc1State struct {
	ROMBank, Secondary, Mode byte
	RAMEnable                bool
}

func (m *mbc1) save() []byte {
	return gobEncode(mbc1State{m.romBank, m.secondary, m.mode, m.ramEnable})
}

func (m *mbc1) load(b []byte) error {
	var s mbc1State
	if err := gobDecode(b, &s); err != nil {
		return err
	}
	m.romBank, m.secondary, m.mode, m.ramEnable = s.ROMBank, s.Secondary, s.Mode, s.RAMEnable
	return nil
}

// MBC2
type mbc2State struct {
	ROMBank   byte
	RAMEnable bool
}

func (m *mbc2) save() []byte {
	return gobEncode(mbc2State{m.romBank, m.ramEnable})
}

func (m *mbc2) load(b []byte) error {
	var s mbc2State
	if err := gobDecode(b, &s); err != nil {
		return err
	}
	m.romBank, m.ramEnable = s.ROMBank, s.RAMEnable
	return nil
}

// MBC3
type mbc3State struct {
	ROMBank, RAMBank     byte
	RTCSelect, RAMEnable bool
}

func (m *mbc3) save() []byte {
	return gobEncode(mbc3State{m.romBank, m.ramBank, m.rtcSelect, m.ramEnable})
}

func (m *mbc3) load(b []byte) error {
	var s mbc3State
	if err := gobDecode(b, &s); err != nil {
		return err
	}
	m.romBank, m.ramBank, m.rtcSelect, m.ramEnable = s.ROMBank, s.RAMBank, s.RTCSelect, s.RAMEnable
	return nil
}

// MBC5
type mbc5State struct {
	ROMBank   uint16
	RAMBank   byte
	RAMEnable bool
}

func (m *mbc5) save() []byte {
	return gobEncode(mbc5State{m.romBank, m.ramBank, m.ramEnable})
}

func (m *mbc5) load(b []byte) error {
	var s mbc5State
	if err := gobDecode(b, &s); err != nil {
		return err
	}
	m.romBank, m.ramBank, m.ramEnable = s.ROMBank, s.RAMBank, s.RAMEnable
	return nil
}
