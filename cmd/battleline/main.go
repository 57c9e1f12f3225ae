package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/lixenwraith/battleline/card"
	"github.com/lixenwraith/battleline/config"
	"github.com/lixenwraith/battleline/logging"
	"github.com/lixenwraith/battleline/render/renderer"
)

var (
	configFlag = flag.String("config", "", "Config file (toml, yaml or json)")
	liveFlag   = flag.Bool("live", false, "Full-screen view until a key is pressed")
	seedFlag   = flag.Uint64("seed", 0, "Shuffle seed, 0 for random (overrides config)")
	colorFlag  = flag.String("color", "", "Color mode: auto, none, 256, truecolor (overrides config)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() (code int) {
	loader := config.NewLoader(*configFlag)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 2
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *colorFlag != "" {
		cfg.Color = *colorFlag
	}
	// Console log lines would tear the full-screen view
	if *liveFlag {
		cfg.Log.Console = false
	}

	logger, err := logging.New("battleline", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		return 2
	}
	defer logger.Sync()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBATTLELINE CRASHED: %v\x1b[0m\n", r)
			code = 1
		}
	}()

	palette, err := cfg.Palette.Apply(renderer.DefaultPalette())
	if err != nil {
		logger.Error("palette", zap.Error(err))
		return 2
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug("shuffling troop deck", zap.Uint64("seed", seed))

	game := newDemo(rand.New(rand.NewPCG(seed, seed)), cfg.HandSize)
	logger.Info("demo dealt",
		zap.Int("hand", game.hand.Len()),
		zap.Int("deck", game.deck.Len()),
	)

	if *liveFlag {
		if err := runLive(game, palette, loader, logger); err != nil {
			logger.Error("live view", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Live view failed: %v\n", err)
			return 1
		}
		return 0
	}

	mode := cfg.ColorMode(os.Stdout)
	if err := game.print(os.Stdout, palette, mode); err != nil {
		logger.Error("render", zap.Error(err))
		return 1
	}
	return 0
}

// newDemo seeds the field with a few plays and deals handSize troops
func newDemo(rng card.Shuffler, handSize int) *demo {
	d := &demo{
		field: demoField(),
		deck:  card.NewTroopDeck(rng),
		hand:  card.NewHand(),
	}
	for i := 0; i < handSize; i++ {
		c, ok := d.deck.Draw()
		if !ok {
			break
		}
		d.hand.Add(c)
	}
	return d
}
