package scenes

import (
	"log"
	"math/rand"

	"github.com/decker502/meteorstorm/pkg/config"
	"github.com/decker502/meteorstorm/pkg/ecs"
	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/decker502/meteorstorm/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SessionState 游戏会话状态
type SessionState int

const (
	// StateRunning 游戏进行中
	StateRunning SessionState = iota
	// StateEnded 玩家被陨石击中或请求退出，游戏循环随后结束
	StateEnded
)

func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateEnded:
		return "ENDED"
	}
	return "UNKNOWN"
}

// GameSceneDeps 游戏场景依赖的外部能力
type GameSceneDeps struct {
	Input  entities.Input
	Clock  entities.Clock
	Sounds entities.SoundPlayer
	Rng    *rand.Rand
	Face   *text.GoTextFace // 分数字体，可为 nil
}

// GameScene 一局游戏会话，持有全部游戏状态
//
// 每帧的执行顺序：
//  1. 陨石生成
//  2. 所有实体 Update
//  3. 清理请求移除自身的实体
//  4. 碰撞检测（玩家被击中则结束会话）
//  5. 从注册表中删除本帧标记的实体
//
// 退出请求由调用方在 Update 之前通过 Quit 传入。会话结束后 Update 不再做任何事。
type GameScene struct {
	cfg    *config.GameConfig
	assets entities.Assets
	deps   GameSceneDeps

	entityManager *entities.Registry
	playerID      ecs.EntityID
	player        *entities.Player

	spawnSystem     *systems.MeteorSpawnSystem
	lifetimeSystem  *systems.LifetimeSystem
	collisionSystem *systems.CollisionSystem
	renderSystem    *systems.RenderSystem

	state      SessionState
	startTicks int64
	finalScore int
}

// NewGameScene 创建一局新游戏
// 先生成星星，再在屏幕中心生成玩家，保证玩家绘制在星星之上
func NewGameScene(cfg *config.GameConfig, assets entities.Assets, deps GameSceneDeps) *GameScene {
	s := &GameScene{
		cfg:           cfg,
		assets:        assets,
		deps:          deps,
		entityManager: entities.NewRegistry(),
		startTicks:    deps.Clock.Ticks(),
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	for i := 0; i < cfg.Stars.Count; i++ {
		center := geom.Vec(float64(deps.Rng.Intn(width+1)), float64(deps.Rng.Intn(height+1)))
		entities.SpawnStar(s.entityManager, assets.Star, center)
	}

	s.player = entities.NewPlayer(
		assets.Player,
		geom.Vec(float64(width)/2, float64(height)/2),
		cfg.Player.Speed,
		cfg.Player.CooldownMs,
		entities.PlayerDeps{
			Input:  deps.Input,
			Clock:  deps.Clock,
			Sounds: deps.Sounds,
			Fire:   s.fireLaser,
		},
	)
	s.playerID = entities.SpawnPlayer(s.entityManager, s.player)

	s.spawnSystem = systems.NewMeteorSpawnSystem(s.entityManager, assets.Meteor, deps.Clock, deps.Rng, cfg.Meteor, width)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager)
	s.collisionSystem = systems.NewCollisionSystem(s.entityManager, s.spawnExplosion)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, systems.RenderOptions{
		Background:   cfg.BackgroundColor(),
		Face:         deps.Face,
		ScreenWidth:  width,
		ScreenHeight: height,
		BottomMargin: cfg.Score.BottomMargin,
		BorderWidth:  cfg.Score.BorderWidth,
	})

	log.Printf("[GameScene] Session started: %d stars, player at (%d, %d)", cfg.Stars.Count, width/2, height/2)
	return s
}

// fireLaser 玩家射击回调
func (s *GameScene) fireLaser(midBottom geom.Vector2) {
	entities.SpawnLaser(s.entityManager, s.assets.Laser, midBottom, s.cfg.Laser.Speed)
}

// spawnExplosion 激光击中陨石回调
func (s *GameScene) spawnExplosion(center geom.Vector2) {
	entities.SpawnExplosion(s.entityManager, s.assets.Explosion, center, s.cfg.Explosion.FPS, s.deps.Sounds)
}

// Update 推进一帧，deltaTime 为秒
func (s *GameScene) Update(deltaTime float64) {
	if s.state == StateEnded {
		return
	}

	s.spawnSystem.Update()

	// 快照：本帧新生成的激光或爆炸从下一帧开始更新
	for _, id := range s.entityManager.GetEntitiesIn(entities.GroupAll) {
		if e, ok := s.entityManager.Get(id); ok {
			e.Update(deltaTime)
		}
	}

	s.lifetimeSystem.Update()

	if s.collisionSystem.Update(s.playerID) {
		log.Printf("[GameScene] Player hit by meteor")
		s.end()
	}

	s.entityManager.RemoveMarkedEntities()
}

func (s *GameScene) end() {
	s.finalScore = s.currentScore()
	s.state = StateEnded
	log.Printf("[GameScene] Session ended with score %d (%d meteors spawned)", s.finalScore, s.spawnSystem.Spawned())
}

// Draw 绘制背景、分数和所有实体
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.Score())
}

// Quit 请求结束会话，重复调用无副作用
func (s *GameScene) Quit() {
	if s.state != StateEnded {
		log.Printf("[GameScene] Quit requested")
		s.end()
	}
}

// Finished 会话是否已结束
func (s *GameScene) Finished() bool {
	return s.state == StateEnded
}

// State 返回会话状态
func (s *GameScene) State() SessionState {
	return s.state
}

// Score 返回当前分数；会话结束后分数固定不变
func (s *GameScene) Score() int {
	if s.state == StateEnded {
		return s.finalScore
	}
	return s.currentScore()
}

func (s *GameScene) currentScore() int {
	return systems.Score(s.deps.Clock.Ticks()-s.startTicks, s.cfg.Score.DivisorMs)
}

// EntityManager 返回会话的实体注册表
func (s *GameScene) EntityManager() *entities.Registry {
	return s.entityManager
}

// Player 返回玩家实体
func (s *GameScene) Player() *entities.Player {
	return s.player
}
