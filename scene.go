package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/bouncebox/bouncebox/scenes"
	"github.com/bouncebox/bouncebox/sim"
)

// Scene is one screen of the game. Dispose releases whatever the scene
// holds; Game calls it when switching away.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Dispose()
}

// TitleScene waits for the start input, then hands off to the play scene.
type TitleScene struct {
	game *Game
}

func NewTitleScene(g *Game) *TitleScene {
	return &TitleScene{game: g}
}

func (s *TitleScene) Update() error {
	if s.game.input.Start {
		s.game.setScene(NewPlayScene(s.game))
	}
	return nil
}

func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	ebitenutil.DebugPrint(screen,
		"bouncebox\n\n"+
			"space / click  start\n"+
			"R              restart scene\n"+
			"tab            pause\n"+
			"esc            back to title")
}

func (s *TitleScene) Dispose() {}

// PlayScene runs one simulation session and draws its nodes. The session
// is torn down wholesale on restart or when leaving the scene.
type PlayScene struct {
	game    *Game
	session *sim.Session
	watcher *scenes.Watcher
}

func NewPlayScene(g *Game) *PlayScene {
	s := &PlayScene{
		game:    g,
		session: sim.NewSession(g.sceneName, sim.Options{}),
	}

	if g.watch {
		w, err := scenes.NewWatcher(scenes.DiskDir, filepath.Join(scenes.DiskDir, "scripts"))
		if err != nil {
			log.Printf("play: scene watcher disabled: %v", err)
		} else {
			s.watcher = w
		}
	}

	return s
}

func (s *PlayScene) Update() error {
	if err := s.session.Err(); err != nil {
		log.Printf("play: scene %q failed: %v", s.game.sceneName, err)
		s.game.setScene(NewTitleScene(s.game))
		return nil
	}

	if s.game.input.Quit {
		s.game.setScene(NewTitleScene(s.game))
		return nil
	}
	if s.game.input.Restart {
		s.restart()
	}

	if s.watcher != nil {
		select {
		case name := <-s.watcher.Events:
			log.Printf("play: %s changed, rebuilding session", name)
			s.restart()
		case err := <-s.watcher.Errors:
			log.Printf("play: watcher error: %v", err)
		default:
		}
	}

	s.session.Tick()
	return nil
}

// restart throws the session away and builds a fresh one from the scene
// files. The old space and nodes are dropped as a unit.
func (s *PlayScene) restart() {
	s.session = sim.NewSession(s.game.sceneName, sim.Options{})
}

func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	for _, node := range s.session.Nodes() {
		node.Draw(screen)
	}

	if s.game.debug {
		drawBodyMarkers(screen, s.session)
	}

	status := fmt.Sprintf("%s | FPS: %.1f | steps: %d | nodes: %d",
		s.game.sceneName, ebiten.ActualFPS(), s.session.Steps(), len(s.session.Nodes()))
	if !s.session.Ready() {
		status += " | loading..."
	}
	ebitenutil.DebugPrint(screen, status)
}

func (s *PlayScene) Dispose() {
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
}
