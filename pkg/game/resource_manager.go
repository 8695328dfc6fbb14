package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/meteorstorm/pkg/components"
	"github.com/decker502/meteorstorm/pkg/embedded"
	"github.com/decker502/meteorstorm/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for sprites, sounds and fonts,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Files are read from the embedded asset filesystem once embedded.Init has been
// called, and from the local filesystem otherwise (tests, -config overrides).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the main
// goroutine during startup, before the game loop runs.
type ResourceManager struct {
	spriteCache   map[string]*components.SpriteComponent // Cache for loaded sprites: path -> sprite
	soundCache    map[string][]byte                      // Cache for decoded PCM sound data: path -> bytes
	musicCache    map[string]*audio.Player               // Cache for looping music players: path -> Player
	audioContext  *audio.Context                         // Global audio context for audio decoding
	fontFaceCache map[string]*text.GoTextFace            // Cache for Ebitengine v2 text faces

	// YAML resource configuration
	config      *ResourceConfig              // Parsed YAML configuration
	resourceMap map[string]string            // Resource ID -> file path mapping for quick lookup
	animations  map[string]AnimationResource // Resource ID -> frame sequence
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
// It should be created once at game startup.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		spriteCache:   make(map[string]*components.SpriteComponent),
		soundCache:    make(map[string][]byte),
		musicCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		animations:    make(map[string]AnimationResource),
	}
}

// readFile reads a resource file from the embedded assets when available,
// otherwise from disk.
func readFile(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}
	return data, err
}

// LoadSprite loads an image file from the specified path and caches it for future use.
// The collision mask is generated once from the decoded pixels.
// Supported formats: PNG (via image/png decoder).
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/player.png").
//
// Returns:
//   - A pointer to the loaded sprite.
//   - An error if the file cannot be opened, decoded, or converted.
func (rm *ResourceManager) LoadSprite(path string) (*components.SpriteComponent, error) {
	// Check if the sprite is already cached
	if cached, exists := rm.spriteCache[path]; exists {
		return cached, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	// Decode the image
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w (%w)", path, err, ErrUnsupportedFormat)
	}

	bounds := img.Bounds()
	sprite := &components.SpriteComponent{
		Image:  ebiten.NewImageFromImage(img), // Convert to Ebitengine image
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Mask:   geom.MaskFromImage(img),
	}

	// Store in cache
	rm.spriteCache[path] = sprite

	return sprite, nil
}

// LoadSpriteByID loads a sprite using its resource ID from the YAML configuration.
func (rm *ResourceManager) LoadSpriteByID(resourceID string) (*components.SpriteComponent, error) {
	path, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadSprite(path)
}

// LoadAnimationFrames loads every frame of a numbered frame sequence declared
// in the resource configuration.
//
// Parameters:
//   - resourceID: The animation ID (e.g., "ANIM_EXPLOSION").
//
// Returns:
//   - The frames in order.
//   - An error if the ID is unknown or any frame fails to load.
func (rm *ResourceManager) LoadAnimationFrames(resourceID string) ([]*components.SpriteComponent, error) {
	anim, exists := rm.animations[resourceID]
	if !exists {
		return nil, fmt.Errorf("%w: animation ID %s", ErrResourceNotFound, resourceID)
	}

	frames := make([]*components.SpriteComponent, 0, anim.Frames)
	for i := 0; i < anim.Frames; i++ {
		path := buildFullPath(rm.config.BasePath, fmt.Sprintf(anim.Pattern, i))
		sprite, err := rm.LoadSprite(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load frame %d of %s: %w", i, resourceID, err)
		}
		frames = append(frames, sprite)
	}
	return frames, nil
}

// decodeAudio decodes an audio file to a stream at the context sample rate.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) decodeAudio(path string, data []byte) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	// Create a reader from the in-memory data
	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	// Determine the file format by extension
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("%w: %s (supported: .wav, .mp3, .ogg)", ErrUnsupportedFormat, ext)
	}
}

// LoadSoundEffect loads a sound effect and caches its decoded PCM data.
// Each playback creates a fresh player from the cached bytes, so overlapping
// shots and explosions do not cut each other off.
//
// Parameters:
//   - path: The file path to the sound effect resource (e.g., "assets/sounds/laser.wav").
//
// Returns:
//   - The decoded PCM bytes.
//   - An error if the file cannot be opened, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) ([]byte, error) {
	// Check if the sound is already cached
	if cached, exists := rm.soundCache[path]; exists {
		return cached, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}

	stream, err := rm.decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect %s: %w", path, err)
	}

	// Store in cache
	rm.soundCache[path] = pcm

	return pcm, nil
}

// LoadAudio loads a music file from the specified path and caches the player.
// The audio is automatically wrapped in an infinite loop, making it suitable for background music.
//
// Parameters:
//   - path: The file path to the audio resource (e.g., "assets/sounds/game_music.wav").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be opened, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	// Check if the audio is already cached
	if cachedPlayer, exists := rm.musicCache[path]; exists {
		return cachedPlayer, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	stream, err := rm.decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	// Wrap the stream in an infinite loop for background music
	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	// Create an audio player
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	// Store in cache
	rm.musicCache[path] = player

	return player, nil
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates a text face with the given size.
// An empty path selects the bundled Go Bold font.
// The font face is cached for future use with a cache key combining path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	// Create cache key combining path and size
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)

	// Check if the font face is already cached
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData := gobold.TTF
	if path != "" {
		data, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		fontData = data
	}

	// Create GoTextFaceSource from font data
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	// Create GoTextFace with specified size
	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}

	// Store in cache
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// LoadFontByID loads a font face using its resource ID.
func (rm *ResourceManager) LoadFontByID(resourceID string, size float64) (*text.GoTextFace, error) {
	path, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadFont(path, size)
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
//
// Example:
//
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal("Failed to load resource config:", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	// Read the YAML file
	data, err := readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	// Parse YAML into ResourceConfig struct
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	// Store the parsed configuration
	rm.config = &config

	// Build resource ID -> path mapping for quick lookup
	rm.buildResourceMap()

	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_PLAYER -> assets/images/player.png
//	SOUND_LASER  -> assets/sounds/laser.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	// Clear existing mapping
	rm.resourceMap = make(map[string]string)
	rm.animations = make(map[string]AnimationResource)

	// Iterate through all resource groups
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)

			// Add file extension if not present
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}

			rm.resourceMap[img.ID] = fullPath
		}

		for _, anim := range group.Animations {
			rm.animations[anim.ID] = anim
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)

			// Add file extension if not present
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav" // Default to WAV for sounds
			}

			rm.resourceMap[sound.ID] = fullPath
		}

		for _, font := range group.Fonts {
			if font.Path == "" {
				rm.resourceMap[font.ID] = ""
				continue
			}
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, exists := rm.resourceMap[resourceID]
	return path, exists
}

// ResourceIDs returns every file-backed resource ID in the configuration, sorted.
func (rm *ResourceManager) ResourceIDs() []string {
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AnimationIDs returns every frame animation ID in the configuration, sorted.
func (rm *ResourceManager) AnimationIDs() []string {
	ids := make([]string, 0, len(rm.animations))
	for id := range rm.animations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (rm *ResourceManager) lookup(resourceID string) (string, error) {
	path, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("%w: resource ID %s", ErrResourceNotFound, resourceID)
	}
	return path, nil
}
