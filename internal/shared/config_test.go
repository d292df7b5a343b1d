package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "mvx.db" {
			t.Errorf("expected database path mvx.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Credentials.TMDB.BaseURL != "https://api.themoviedb.org/3" {
			t.Errorf("expected TMDB base URL, got %s", config.Credentials.TMDB.BaseURL)
		}

		if config.Credentials.Kakao.RedirectURI != "http://localhost:8080/oauth/redirect" {
			t.Errorf("expected kakao redirect URI, got %s", config.Credentials.Kakao.RedirectURI)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 3000

[credentials.tmdb]
api_key = "test_api_key"
base_url = "http://localhost:9090"

[credentials.kakao]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:3000/oauth/redirect"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.Credentials.TMDB.APIKey != "test_api_key" {
			t.Errorf("expected tmdb api_key test_api_key, got %s", config.Credentials.TMDB.APIKey)
		}
	})

	t.Run("SaveConfig Round Trip", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		config := DefaultConfig()
		config.Credentials.Kakao.ClientID = "saved_client"

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}
		if loaded.Credentials.Kakao.ClientID != "saved_client" {
			t.Errorf("expected saved client id to survive, got %s", loaded.Credentials.Kakao.ClientID)
		}
	})

	t.Run("LoadEnv Overrides API Key", func(t *testing.T) {
		config := DefaultConfig()
		t.Setenv("TMDB_API_KEY", "env_api_key")

		LoadEnv(config, filepath.Join(t.TempDir(), "missing.env"))

		if config.Credentials.TMDB.APIKey != "env_api_key" {
			t.Errorf("expected env override, got %s", config.Credentials.TMDB.APIKey)
		}
	})

	t.Run("LoadEnv Reads Dotenv File", func(t *testing.T) {
		tmpDir := t.TempDir()
		envPath := filepath.Join(tmpDir, ".env")
		if err := os.WriteFile(envPath, []byte("TMDB_API_KEY=dotenv_api_key\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Setenv("TMDB_API_KEY", "placeholder")
		os.Unsetenv("TMDB_API_KEY")

		config := DefaultConfig()
		LoadEnv(config, envPath)

		if config.Credentials.TMDB.APIKey != "dotenv_api_key" {
			t.Errorf("expected dotenv value, got %s", config.Credentials.TMDB.APIKey)
		}
	})

	t.Run("KakaoConfig Map", func(t *testing.T) {
		k := KakaoConfig{ClientID: "id", ClientSecret: "secret", RedirectURI: "uri"}
		m := k.Map()
		if m["client_id"] != "id" || m["client_secret"] != "secret" || m["redirect_uri"] != "uri" {
			t.Errorf("unexpected credentials map: %v", m)
		}
	})
}
