package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meadori/dotmatrix/display"
	"github.com/meadori/dotmatrix/gameboy"
	"github.com/meadori/dotmatrix/server"
)

// savePath derives the battery-backed RAM filename from the ROM path.
func savePath(romPath string) string {
	if i := strings.LastIndex(romPath, "."); i > 0 {
		return romPath[:i] + ".sav"
	}
	return romPath + ".sav"
}

func main() {
	romFile := flag.String("rom", "", "Path to a Game Boy ROM (use the O key to pick one later)")
	port := flag.Int("port", 50051, "Port for the gRPC debug server")
	recordFile := flag.String("record", "", "Record inputs to this file")
	paletteName := flag.String("palette", "green", "LCD palette: green or gray")
	flag.Parse()

	gb := gameboy.New()

	if *romFile != "" {
		if err := gb.LoadROMFile(*romFile); err != nil {
			log.Fatalf("Error loading ROM: %v", err)
		}
		log.Printf("Loaded %q", gb.Title())

		if gb.HasBattery() {
			if data, err := os.ReadFile(savePath(*romFile)); err == nil {
				gb.LoadBatteryRAM(data)
				log.Printf("Restored battery RAM from %s", savePath(*romFile))
			}
		}
	}

	var recFile *os.File
	if *recordFile != "" {
		var err error
		recFile, err = os.Create(*recordFile)
		if err != nil {
			log.Fatalf("Error creating record file: %v", err)
		}
		defer recFile.Close()
		log.Printf("Recording inputs to %s", *recordFile)
	}

	srv := server.NewGRPCServer()
	if err := srv.Start(*port); err != nil {
		log.Fatalf("Error starting gRPC server: %v", err)
	}
	defer srv.Stop()

	d := display.New(gb, srv, recFile, display.Palette(*paletteName))
	srv.SetMachine(d)

	ebiten.SetWindowSize(display.ScaledWidth(), display.ScaledHeight())
	ebiten.SetWindowTitle("dotmatrix")
	if err := ebiten.RunGame(d); err != nil {
		log.Fatalf("Error running game: %v", err)
	}

	if *romFile != "" && gb.HasBattery() {
		if err := os.WriteFile(savePath(*romFile), gb.BatteryRAM(), 0o644); err != nil {
			log.Printf("Error writing battery RAM: %v", err)
		} else {
			log.Printf("Saved battery RAM to %s", savePath(*romFile))
		}
	}
}
