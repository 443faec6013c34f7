package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"sync"

	"github.com/meadori/dotmatrix/api"
	"google.golang.org/grpc"
)

// Machine defines the methods the server needs from the emulator. The
// display goroutine owns the machine; the server only touches it through
// this interface while the display polls the server for input.
type Machine interface {
	Read(addr uint16) byte
	ReadBlock(addr, size uint16) []byte
	FramePixels() []byte
	CPUState() (a, f, b, c, d, e, h, l byte, sp, pc uint16, cycles uint64)
	LoadState(filename string) error
	Reset()
	SetPaused(bool)
	RequestStep()
}

// GRPCServer exposes the debug and remote-input service.
type GRPCServer struct {
	api.UnimplementedDebugServiceServer
	mu       sync.Mutex
	input    [8]bool
	listener net.Listener
	server   *grpc.Server
	machine  Machine
}

// NewGRPCServer creates a server with no machine attached.
func NewGRPCServer() *GRPCServer {
	return &GRPCServer{}
}

// SetMachine attaches the emulator the server operates on.
func (s *GRPCServer) SetMachine(m Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine = m
}

func (s *GRPCServer) getMachine() (Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.machine == nil {
		return nil, fmt.Errorf("emulator not connected")
	}
	return s.machine, nil
}

// GetFrame returns the current framebuffer, one shade per byte.
func (s *GRPCServer) GetFrame(ctx context.Context, in *api.Empty) (*api.FrameResponse, error) {
	m, err := s.getMachine()
	if err != nil {
		return nil, err
	}
	return &api.FrameResponse{Pixels: m.FramePixels()}, nil
}

// GetCPUState returns the CPU registers and cycle counter.
func (s *GRPCServer) GetCPUState(ctx context.Context, in *api.Empty) (*api.CPUStateResponse, error) {
	m, err := s.getMachine()
	if err != nil {
		return nil, err
	}
	a, f, b, c, d, e, h, l, sp, pc, cycles := m.CPUState()
	return &api.CPUStateResponse{
		A: uint32(a), F: uint32(f),
		B: uint32(b), C: uint32(c),
		D: uint32(d), E: uint32(e),
		H: uint32(h), L: uint32(l),
		Sp:     uint32(sp),
		Pc:     uint32(pc),
		Cycles: cycles,
	}, nil
}

// ReadMemory returns one byte of the CPU-visible address space.
func (s *GRPCServer) ReadMemory(ctx context.Context, in *api.MemoryRequest) (*api.MemoryResponse, error) {
	m, err := s.getMachine()
	if err != nil {
		return nil, err
	}
	return &api.MemoryResponse{Data: uint32(m.Read(uint16(in.Address)))}, nil
}

// ReadMemoryBlock returns a run of bytes starting at an address.
func (s *GRPCServer) ReadMemoryBlock(ctx context.Context, in *api.MemoryBlockRequest) (*api.MemoryBlockResponse, error) {
	m, err := s.getMachine()
	if err != nil {
		return nil, err
	}
	return &api.MemoryBlockResponse{Data: m.ReadBlock(uint16(in.Address), uint16(in.Size))}, nil
}

// LoadState commands the emulator to load a savestate file.
func (s *GRPCServer) LoadState(ctx context.Context, in *api.StateRequest) (*api.Empty, error) {
	m, err := s.getMachine()
	if err != nil {
		return nil, err
	}
	if err := m.LoadState(in.Filename); err != nil {
		return nil, fmt.Errorf("failed to load state: %v", err)
	}
	return &api.Empty{}, nil
}

// ResetSystem returns the machine to the post-boot state.
func (s *GRPCServer) ResetSystem(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	m, err := s.getMachine()
	if err != nil {
		return nil, err
	}
	m.Reset()
	return &api.Empty{}, nil
}

// Pause suspends the emulation loop.
func (s *GRPCServer) Pause(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	if m, err := s.getMachine(); err == nil {
		m.SetPaused(true)
	}
	return &api.Empty{}, nil
}

// Resume restarts the emulation loop.
func (s *GRPCServer) Resume(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	if m, err := s.getMachine(); err == nil {
		m.SetPaused(false)
	}
	return &api.Empty{}, nil
}

// Step advances the CPU by one instruction while paused.
func (s *GRPCServer) Step(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	if m, err := s.getMachine(); err == nil {
		m.RequestStep()
	}
	return &api.Empty{}, nil
}

// StreamInput handles incoming joypad streams from clients.
func (s *GRPCServer) StreamInput(stream grpc.BidiStreamingServer[api.InputState, api.Empty]) error {
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		s.mu.Lock()
		s.input = [8]bool{
			req.A,
			req.B,
			req.Select,
			req.Start,
			req.Up,
			req.Down,
			req.Left,
			req.Right,
		}
		s.mu.Unlock()
	}
}

// InputState returns the latest remote joypad state.
func (s *GRPCServer) InputState() [8]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Start begins listening for gRPC connections on the given port.
func (s *GRPCServer) Start(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = lis
	s.server = grpc.NewServer()
	api.RegisterDebugServiceServer(s.server, s)

	log.Printf("gRPC server listening on :%d", port)

	go func() {
		if err := s.server.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the gRPC server.
func (s *GRPCServer) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
}
