package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Server:     ServerConfig{Port: 8080},
				Processing: ProcessingConfig{Workers: 2},
				Groq:       GroqConfig{MaxChunkTokens: 6000},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: Config{
				Server: ServerConfig{Port: 0},
			},
			wantErr: true,
		},
		{
			name: "port too large",
			config: Config{
				Server: ServerConfig{Port: 70000},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigValidateAutocorrects(t *testing.T) {
	cfg := Config{
		Server:     ServerConfig{Port: 8080},
		Processing: ProcessingConfig{Workers: 0},
		Groq:       GroqConfig{MaxChunkTokens: -1},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Processing.Workers)
	assert.Equal(t, 6000, cfg.Groq.MaxChunkTokens)
}
