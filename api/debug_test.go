package api

import (
	"testing"

	"google.golang.org/protobuf/proto"
)

// Marshaling forces the file descriptor to build, so a malformed
// descriptor fails here instead of panicking in every client at startup.
func TestInputStateRoundTrip(t *testing.T) {
	in := &InputState{A: true, Start: true, Left: true}
	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	out := &InputState{}
	if err := proto.Unmarshal(data, out); err != nil {
		t.Fatal(err)
	}
	if !out.A || !out.Start || !out.Left || out.B || out.Right {
		t.Errorf("round trip = %+v, want A, Start and Left set", out)
	}
}

func TestServiceDescriptor(t *testing.T) {
	svcs := File_debug_proto.Services()
	if svcs.Len() != 1 {
		t.Fatalf("services = %d, want 1", svcs.Len())
	}
	svc := svcs.Get(0)
	if got, want := string(svc.Name()), "DebugService"; got != want {
		t.Errorf("service name = %q, want %q", got, want)
	}
	if got, want := svc.Methods().Len(), 10; got != want {
		t.Errorf("methods = %d, want %d", got, want)
	}

	m := svc.Methods().ByName("StreamInput")
	if m == nil {
		t.Fatal("StreamInput not in the descriptor")
	}
	if !m.IsStreamingClient() || !m.IsStreamingServer() {
		t.Error("StreamInput must stream in both directions")
	}
}
