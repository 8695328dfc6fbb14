package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/meteorstorm/pkg/embedded"
	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestMain 使用仓库中的 assets/ 目录作为嵌入资源
func TestMain(m *testing.M) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	os.Exit(m.Run())
}

func TestLoadGameConfigEmbedded(t *testing.T) {
	cfg, err := loadGameConfig("")
	if err != nil {
		t.Fatalf("loadGameConfig failed: %v", err)
	}
	if cfg.Window.Title != "Meteor Storm" {
		t.Errorf("title = %q, want Meteor Storm", cfg.Window.Title)
	}
}

func TestLoadGameConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("stars:\n  count: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadGameConfig(path)
	if err != nil {
		t.Fatalf("loadGameConfig failed: %v", err)
	}
	if cfg.Stars.Count != 3 {
		t.Errorf("stars = %d, want 3", cfg.Stars.Count)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("unset fields should keep defaults, player speed = %v", cfg.Player.Speed)
	}
}

func TestLoadGameConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("meteor:\n  speed:\n    min: 10\n    max: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadGameConfig(path); err == nil {
		t.Error("expected error for inverted speed range")
	}
}

// noInput 没有任何按键按住
type noInput struct{}

func (noInput) IsActionPressed(entities.Action) bool { return false }

func TestNewAppAndSessionLifecycle(t *testing.T) {
	a, err := NewApp(Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	w, h := a.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, h)
	}
	if a.WindowConfig().Title != "Meteor Storm" {
		t.Errorf("window title = %q", a.WindowConfig().Title)
	}
	if len(a.assets.Explosion) != 21 {
		t.Errorf("explosion frames = %d, want 21", len(a.assets.Explosion))
	}

	// 会话在第一次 Update 时创建（音频上下文每个进程只能创建一次，所以放在同一个测试里）
	quit := false
	a.input = noInput{}
	a.quit = func() bool { return quit }

	if a.session != nil || a.clock != nil {
		t.Fatal("session and clock should not exist before the first Update")
	}
	// 第一次 Update 之前绘制是空操作
	a.Draw(nil)

	if err := a.Update(); err != nil {
		t.Fatalf("first Update() = %v, want nil", err)
	}
	if a.session == nil {
		t.Fatal("first Update should start the session")
	}
	if got := a.session.EntityManager().Count(entities.GroupAll); got != 21 {
		t.Errorf("entities at start = %d, want 21", got)
	}
	if got := a.session.Score(); got != 0 {
		t.Errorf("score at start = %d, want 0", got)
	}

	session := a.session
	if err := a.Update(); err != nil {
		t.Fatalf("second Update() = %v, want nil", err)
	}
	if a.session != session {
		t.Error("session should only be created once")
	}

	quit = true
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() after quit = %v, want ebiten.Termination", err)
	}
	if !a.session.Finished() {
		t.Error("quit should end the session")
	}
}
