package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 应用游戏配置中的音乐和音效音量
//   - 提供便捷的播放接口
//
// 音效采用"触发即忘"：每次播放创建新的播放器，调用方不等待也不查询播放状态。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	currentMusic    *audio.Player            // 当前播放的背景音乐
	currentMusicID  string                   // 当前播放的背景音乐ID
	musicVolume     float64
	soundVolume     float64
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - musicVolume: 背景音乐音量 (0.0 ~ 1.0)
//   - soundVolume: 音效音量 (0.0 ~ 1.0)
func NewAudioManager(rm *ResourceManager, musicVolume, soundVolume float64) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		musicPlayers:    make(map[string]*audio.Player),
		musicVolume:     clampVolume(musicVolume),
		soundVolume:     clampVolume(soundVolume),
	}
}

// PlaySound 播放音效
// 音效单次播放，不阻塞调用方
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_LASER", "SOUND_EXPLOSION"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	pcm := am.getSoundData(soundID)
	if pcm == nil {
		return false
	}

	player := am.resourceManager.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(am.soundVolume)
	player.Play()

	return true
}

// PreloadSounds 预加载音效
// 在会话开始前调用，避免首次播放时的延迟；任何音效加载失败都会返回错误
func (am *AudioManager) PreloadSounds(soundIDs []string) error {
	for _, soundID := range soundIDs {
		path, err := am.resourceManager.lookup(soundID)
		if err != nil {
			return err
		}
		if _, err := am.resourceManager.LoadSoundEffect(path); err != nil {
			return err
		}
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
	return nil
}

// PlayMusic 播放背景音乐
// 背景音乐循环播放，同一时间只能播放一首
func (am *AudioManager) PlayMusic(musicID string) bool {
	// 如果已经在播放同一首音乐，不重复播放
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	// 停止当前音乐
	am.StopMusic()

	player := am.getMusicPlayer(musicID)
	if player == nil {
		return false
	}

	player.SetVolume(am.musicVolume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, am.musicVolume)

	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// getSoundData 获取或加载音效数据
func (am *AudioManager) getSoundData(soundID string) []byte {
	path, exists := am.resourceManager.ResolvePath(soundID)
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	pcm, err := am.resourceManager.LoadSoundEffect(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		return nil
	}
	return pcm
}

// getMusicPlayer 获取或加载音乐播放器
func (am *AudioManager) getMusicPlayer(musicID string) *audio.Player {
	// 检查缓存
	if player, exists := am.musicPlayers[musicID]; exists {
		return player
	}

	path, exists := am.resourceManager.ResolvePath(musicID)
	if !exists {
		log.Printf("[AudioManager] Warning: Music not found: %s", musicID)
		return nil
	}

	// 使用 LoadAudio 加载（循环播放）
	player, err := am.resourceManager.LoadAudio(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load music %s: %v", musicID, err)
		return nil
	}
	am.musicPlayers[musicID] = player
	return player
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
