package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/meadori/dotmatrix/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	fmt.Println("GBDB - dotmatrix DeBugger")
	fmt.Println("Connecting to emulator on localhost:50051...")

	conn, err := grpc.Dial("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := api.NewDebugServiceClient(conn)
	fmt.Println("Connected. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("(gbdb) ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]

		switch cmd {
		case "help", "h":
			fmt.Println("Commands:")
			fmt.Println("  run, c      - Resume execution")
			fmt.Println("  pause, p    - Pause execution")
			fmt.Println("  step, s     - Step one instruction")
			fmt.Println("  regs, i r   - Print CPU registers")
			fmt.Println("  x <addr>    - Examine memory (e.g. x C000 or x/16 C000)")
			fmt.Println("  load <file> - Load a savestate on the emulator host")
			fmt.Println("  reset       - Reset the machine")
			fmt.Println("  quit, q     - Exit debugger")
		case "quit", "q", "exit":
			return
		case "pause", "p":
			_, err := client.Pause(context.Background(), &api.Empty{})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Println("Emulator paused.")
				printRegs(client)
			}
		case "run", "c", "continue":
			_, err := client.Resume(context.Background(), &api.Empty{})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Println("Emulator running...")
			}
		case "step", "s":
			_, err := client.Step(context.Background(), &api.Empty{})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				printRegs(client)
			}
		case "regs", "i":
			if len(parts) > 1 && parts[1] == "r" || cmd == "regs" {
				printRegs(client)
			} else {
				fmt.Println("Unknown command. Did you mean 'i r'?")
			}
		case "reset":
			_, err := client.ResetSystem(context.Background(), &api.Empty{})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Println("Machine reset.")
			}
		case "load":
			if len(parts) < 2 {
				fmt.Println("Usage: load <file>")
				continue
			}
			_, err := client.LoadState(context.Background(), &api.StateRequest{Filename: parts[1]})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Println("State loaded.")
				printRegs(client)
			}
		case "x":
			if len(parts) == 1 {
				fmt.Println("Usage: x <addr> or x/<count> <addr>")
				continue
			}
			examine(client, 1, parts[1])
		default:
			// x/count form, e.g. x/16 C000
			if strings.HasPrefix(cmd, "x/") {
				count, _ := strconv.ParseInt(strings.TrimPrefix(cmd, "x/"), 10, 32)
				if count <= 0 {
					count = 1
				}
				if len(parts) > 1 {
					examine(client, int(count), parts[1])
				} else {
					fmt.Println("Usage: x/<count> <addr>")
				}
			} else {
				fmt.Printf("Unknown command: %s\n", cmd)
			}
		}
	}
}

func examine(client api.DebugServiceClient, count int, addrStr string) {
	addrStr = strings.TrimPrefix(addrStr, "0x")
	addr, err := strconv.ParseUint(addrStr, 16, 32)
	if err != nil {
		fmt.Printf("Invalid address: %s\n", addrStr)
		return
	}

	res, err := client.ReadMemoryBlock(context.Background(), &api.MemoryBlockRequest{
		Address: uint32(addr),
		Size:    uint32(count),
	})
	if err != nil {
		fmt.Printf("Error reading memory: %v\n", err)
		return
	}
	printHexDump(uint16(addr), res.Data)
}

func printRegs(client api.DebugServiceClient) {
	state, err := client.GetCPUState(context.Background(), &api.Empty{})
	if err != nil {
		fmt.Printf("Error getting CPU state: %v\n", err)
		return
	}
	fmt.Printf("A: %02X  F: %02X  B: %02X  C: %02X  D: %02X  E: %02X  H: %02X  L: %02X\n",
		state.A, state.F, state.B, state.C, state.D, state.E, state.H, state.L)
	fmt.Printf("SP: %04X  PC: %04X  Cycles: %d\n", state.Sp, state.Pc, state.Cycles)
}

func printHexDump(startAddr uint16, data []byte) {
	for i := 0; i < len(data); i += 16 {
		fmt.Printf("%04X:", startAddr+uint16(i))
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		for j := i; j < end; j++ {
			fmt.Printf(" %02X", data[j])
		}
		fmt.Println()
	}
}
