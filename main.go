package main

import (
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/emupack/chip-8/chip8"
)

const (
	windowTitle = "CHIP-8"

	// window size, machine display scaled up 10x
	windowWidth  = chip8.DisplayWidth * 10
	windowHeight = chip8.DisplayHeight * 10

	// machine tick interval; 8 ticks per 60 Hz frame
	tickInterval = 2083 * time.Microsecond
)

func init() {
	runtime.LockOSThread()
}

func main() {
	logger := log.NewWithConfig(log.DefaultConfig())

	rand.Seed(time.Now().UTC().UnixNano())

	rom, name, err := loadROM()
	if err != nil {
		logger.Fatal("loading ROM", log.Err(err))
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		logger.Fatal("initializing SDL", log.Err(err))
	}
	defer sdl.Quit()

	window, renderer, err := sdl.CreateWindowAndRenderer(
		windowWidth, windowHeight, sdl.WINDOW_OPENGL)
	if err != nil {
		logger.Fatal("creating window", log.Err(err))
	}
	defer window.Destroy()

	window.SetTitle(windowTitle + " - " + name)

	screen, err := NewScreen(renderer)
	if err != nil {
		logger.Fatal("creating screen", log.Err(err))
	}

	tone, err := NewTone()
	if err != nil {
		logger.Fatal("opening audio device", log.Err(err))
	}

	keypad := &Keypad{}

	vm := chip8.New(logger, screen, keypad, tone)
	if err := vm.LoadROM(rom); err != nil {
		logger.Fatal("loading ROM", log.Err(err))
	}

	logger.Info("machine ready",
		log.String("rom", name),
		log.Int("size", len(rom)))

	if err := run(vm, keypad); err != nil {
		logger.Fatal("machine fault", log.Err(err))
	}
}

// run drives the machine until the window closes, escape is pressed, the
// program counter runs off the end of memory or a stack fault occurs.
func run(vm *chip8.VM, keypad *Keypad) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for range ticker.C {
		keypad.ProcessEvents()

		if keypad.QuitRequested() || vm.Halted() {
			return nil
		}

		if keypad.ResetRequested() {
			vm.Reset()
		}

		// stack faults are fatal and end the run
		if err := vm.Tick(); err != nil {
			return err
		}
	}

	return nil
}

// loadROM reads the program named on the command line, or asks for one with
// a file dialog when no argument was given.
func loadROM() ([]byte, string, error) {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		var err error

		path, err = dialog.File().
			Title("Open ROM").
			Filter("CHIP-8 ROM", "ch8", "rom").
			Load()
		if err != nil {
			return nil, "", err
		}
	}

	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	return rom, path, nil
}
