// file: internal/config/config.go
// version: 1.0.0
// guid: 3c7e9a1d-5b2f-4c8e-a0d6-7f1b4e8c2a9d

package config

import (
	"github.com/spf13/viper"

	"github.com/jdfalk/trigram-search/internal/trigram"
)

// Config holds application configuration
type Config struct {
	Threshold float64 // similarity cutoff for find and rank
	TopK      int     // result limit for rank; 0 means unlimited
	NoColor   bool    // disable match highlighting in find output
	JSON      bool    // emit results as JSON lines
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("threshold", trigram.DefaultThreshold)
	viper.SetDefault("top_k", 0)
	viper.SetDefault("no_color", false)
	viper.SetDefault("json", false)

	AppConfig = Config{
		Threshold: viper.GetFloat64("threshold"),
		TopK:      viper.GetInt("top_k"),
		NoColor:   viper.GetBool("no_color"),
		JSON:      viper.GetBool("json"),
	}

	// Clamp the threshold into a usable range; a zero or negative cutoff
	// would mark every window a match.
	if AppConfig.Threshold <= 0 || AppConfig.Threshold > 1 {
		AppConfig.Threshold = trigram.DefaultThreshold
	}
	if AppConfig.TopK < 0 {
		AppConfig.TopK = 0
	}
}
