package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/config"
	"github.com/decker502/meteorstorm/pkg/entities"
	"github.com/decker502/meteorstorm/pkg/geom"
)

// MeteorSpawnSystem 管理陨石的定时生成
//
// 生成时刻固定为 开始时刻 + k*间隔，与上一次生成何时发生无关；
// 一帧跨越多个间隔时，每个间隔生成一颗。
type MeteorSpawnSystem struct {
	entityManager *entities.Registry
	sprite        *components.SpriteComponent
	clock         entities.Clock
	rng           *rand.Rand
	cfg           config.MeteorConfig
	screenWidth   int
	nextSpawn     int64 // 下一次生成时刻（毫秒）
	spawned       int
}

// NewMeteorSpawnSystem 创建陨石生成系统
// 第一次生成发生在创建时刻之后一个间隔
//
// 参数:
//   - em: 实体注册表
//   - sprite: 陨石图像
//   - clock: 游戏时钟
//   - rng: 随机数源
//   - cfg: 陨石配置
//   - screenWidth: 屏幕宽度（出生点 X 范围）
func NewMeteorSpawnSystem(em *entities.Registry, sprite *components.SpriteComponent, clock entities.Clock, rng *rand.Rand, cfg config.MeteorConfig, screenWidth int) *MeteorSpawnSystem {
	log.Printf("[MeteorSpawnSystem] Initialized with interval=%dms, lifetime=%dms", cfg.SpawnIntervalMs, cfg.LifetimeMs)
	return &MeteorSpawnSystem{
		entityManager: em,
		sprite:        sprite,
		clock:         clock,
		rng:           rng,
		cfg:           cfg,
		screenWidth:   screenWidth,
		nextSpawn:     clock.Ticks() + cfg.SpawnIntervalMs,
	}
}

// Update 检查生成计时器，返回本帧生成的陨石数量
func (s *MeteorSpawnSystem) Update() int {
	now := s.clock.Ticks()
	count := 0
	for now >= s.nextSpawn {
		s.spawn()
		s.nextSpawn += s.cfg.SpawnIntervalMs
		count++
	}
	return count
}

// Spawned 返回累计生成的陨石数量
func (s *MeteorSpawnSystem) Spawned() int {
	return s.spawned
}

func (s *MeteorSpawnSystem) spawn() {
	center := geom.Vec(
		float64(randInt(s.rng, 0, s.screenWidth)),
		float64(randInt(s.rng, s.cfg.SpawnY.Min, s.cfg.SpawnY.Max)),
	)
	params := RandomMeteorParams(s.rng, s.cfg)
	entities.SpawnMeteor(s.entityManager, s.sprite, center, params, s.clock)
	s.spawned++
}

// RandomMeteorParams 按配置生成一组随机陨石参数
// 方向 X 取 [-spread, spread] 的均匀分布，Y 固定为 1，不做归一化
func RandomMeteorParams(rng *rand.Rand, cfg config.MeteorConfig) entities.MeteorParams {
	spread := cfg.DirectionSpread
	return entities.MeteorParams{
		Direction:     geom.Vec(-spread+rng.Float64()*2*spread, 1),
		Speed:         float64(randInt(rng, cfg.Speed.Min, cfg.Speed.Max)),
		RotationSpeed: float64(randInt(rng, cfg.RotationSpeed.Min, cfg.RotationSpeed.Max)),
		LifetimeMs:    cfg.LifetimeMs,
	}
}

// randInt 返回闭区间 [lo, hi] 内的随机整数
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
