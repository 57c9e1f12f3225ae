package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/battleline/config"
	"github.com/lixenwraith/battleline/render"
	"github.com/lixenwraith/battleline/render/renderer"
	"github.com/lixenwraith/battleline/terminal"
)

// paletteReload carries a new palette from the config watcher to the event loop
type paletteReload struct {
	palette renderer.Palette
}

// runLive shows the demo full-screen until a key is pressed
// Config file edits re-render with the new palette
func runLive(game *demo, palette renderer.Palette, loader *config.Loader, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	loader.Watch(func(cfg *config.Config, err error) {
		if err != nil {
			logger.Warn("config reload rejected", zap.Error(err))
			return
		}
		p, err := cfg.Palette.Apply(renderer.DefaultPalette())
		if err != nil {
			logger.Warn("palette reload rejected", zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("path", loader.Path()))
		_ = screen.PostEvent(tcell.NewEventInterrupt(paletteReload{palette: p}))
	})

	if err := drawLive(screen, game, palette); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := drawLive(screen, game, palette); err != nil {
				return err
			}
		case *tcell.EventInterrupt:
			if reload, ok := ev.Data().(paletteReload); ok {
				palette = reload.palette
				if err := drawLive(screen, game, palette); err != nil {
					return err
				}
			}
		case *tcell.EventKey:
			return nil
		}
	}
}

func drawLive(screen tcell.Screen, game *demo, palette renderer.Palette) error {
	field, hand, err := game.frames(palette)
	if err != nil {
		return err
	}

	status, err := render.NewBuffer(renderer.FieldWidth+renderer.HandWidth, 2)
	if err != nil {
		return err
	}
	status.Print(fmt.Sprintf("%s\nPress any key to quit", game.remaining()), 0, 0, terminal.ColorDefault, terminal.ColorDefault)

	screen.Clear()
	field.Blit(screen, 0, 0)
	hand.Blit(screen, 0, field.Height()+1)
	status.Blit(screen, 0, field.Height()+hand.Height()+2)
	screen.Show()
	return nil
}
