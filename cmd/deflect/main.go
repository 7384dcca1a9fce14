package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deflect/audio"
	"github.com/lixenwraith/deflect/engine"
	"github.com/lixenwraith/deflect/event"
	"github.com/lixenwraith/deflect/input"
	"github.com/lixenwraith/deflect/parameter"
	"github.com/lixenwraith/deflect/render"
	"github.com/lixenwraith/deflect/system"
	"github.com/lixenwraith/deflect/vmath"
)

var (
	seedFlag = flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	muteFlag = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before reporting, or the
	// trace is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nDEFLECT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	world := engine.NewWorld()
	if *seedFlag != 0 {
		world.Resources.Rand = vmath.NewFastRand(*seedFlag)
	}
	system.BuildField(world)

	// Frame phases in priority order; the physics step doubles as the
	// spawn scheduler's overlap query provider
	physicsSystem := system.NewPhysicsSystem(world)
	world.AddSystem(system.NewForceSystem(world))
	world.AddSystem(system.NewGoalSystem(world))
	world.AddSystem(system.NewPointBallSystem(world))
	world.AddSystem(system.NewBonusSystem(world))
	world.AddSystem(system.NewSpawnSystem(world, physicsSystem))
	world.AddSystem(system.NewCullSystem(world))
	world.AddSystem(physicsSystem)

	width, height := screen.Size()
	viewport := render.NewViewport(width, height)
	renderer := render.NewRenderer(screen, viewport)
	world.AddSystem(system.NewPaddleSystem(world, viewport))

	audioEngine := audio.NewEngine()
	// A missing audio device degrades to silence
	_ = audioEngine.Init()
	if *muteFlag {
		audioEngine.ToggleMute()
	}
	router := event.NewRouter(world.Resources.Events)
	router.Register(system.NewAudioHandler(audioEngine))

	machine := input.NewMachine(world.Resources.Pointer)

	// Input polling feeds the main loop; tcell blocks in PollEvent
	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	clock := engine.NewTimeProvider()
	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	var frame int64
	for {
		select {
		case ev := <-eventChan:
			switch machine.HandleEvent(ev) {
			case input.ActionQuit:
				return
			case input.ActionToggleMute:
				audioEngine.ToggleMute()
			case input.ActionResize:
				width, height = screen.Size()
				renderer.Resize(width, height)
				screen.Sync()
			}

		case <-frameTicker.C:
			frame++
			world.Resources.Time.GameTime = clock.Now()
			world.Resources.Time.DeltaTime = parameter.FrameInterval
			world.Resources.Time.FrameNumber = frame

			world.Update()
			router.DispatchAll()
			renderer.Draw(world)
		}
	}
}
