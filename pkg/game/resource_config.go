package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    animations: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images     []ImageResource     `yaml:"images"`     // List of image resources in this group
	Animations []AnimationResource `yaml:"animations"` // List of frame sequences in this group
	Sounds     []SoundResource     `yaml:"sounds"`     // List of sound resources in this group
	Fonts      []FontResource      `yaml:"fonts"`      // List of font resources in this group
}

// ImageResource represents a single image resource definition.
//
// Example:
//
//	- id: IMAGE_PLAYER
//	  path: images/player
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// AnimationResource describes a numbered frame sequence.
// Pattern is a fmt format with a single %d verb that receives the frame number,
// starting at 0.
//
// Example:
//
//	- id: ANIM_EXPLOSION
//	  pattern: images/explosion/%d.png
//	  frames: 21
type AnimationResource struct {
	ID      string `yaml:"id"`
	Pattern string `yaml:"pattern"`
	Frames  int    `yaml:"frames"`
}

// SoundResource represents a single sound/audio resource definition.
//
// Example:
//   - id: SOUND_LASER
//     path: sounds/laser.wav
type SoundResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FontResource represents a single font resource definition.
// An empty path selects the bundled Go Bold font.
type FontResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	// Simple path joining - handles the case where relative path might start with /
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
