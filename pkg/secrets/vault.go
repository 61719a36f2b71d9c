package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigPrefixes are the environment keys pkg/config reads. Vault entries
// outside these prefixes are ignored.
var ConfigPrefixes = []string{"APP_", "LOG_", "SERVER_", "ALLOWED_", "DB_", "REDIS_", "OTEL_"}

// VaultConfig describes where directory secrets live in a Vault KV engine.
type VaultConfig struct {
	Enabled   bool
	Addr      string
	Token     string
	Namespace string
	Mount     string
	Path      string
	KVVersion int
	Timeout   time.Duration
	Overwrite bool
}

// VaultResult reports how many variables were exported.
type VaultResult struct {
	Loaded  int
	Skipped int
	Ignored int
}

// LoadVaultConfigFromEnv reads VAULT_* variables.
func LoadVaultConfigFromEnv() VaultConfig {
	cfg := VaultConfig{
		Enabled:   strings.EqualFold(os.Getenv("VAULT_ENABLED"), "true"),
		Addr:      os.Getenv("VAULT_ADDR"),
		Token:     os.Getenv("VAULT_TOKEN"),
		Namespace: os.Getenv("VAULT_NAMESPACE"),
		Mount:     "secret",
		Path:      os.Getenv("VAULT_PATH"),
		KVVersion: 2,
		Timeout:   5 * time.Second,
		Overwrite: strings.EqualFold(os.Getenv("VAULT_OVERWRITE"), "true"),
	}
	if mount := os.Getenv("VAULT_MOUNT"); mount != "" {
		cfg.Mount = mount
	}
	if v, err := strconv.Atoi(os.Getenv("VAULT_KV_VERSION")); err == nil {
		cfg.KVVersion = v
	}
	if ms, err := strconv.Atoi(os.Getenv("VAULT_TIMEOUT_MS")); err == nil && ms > 0 {
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}
	return cfg
}

// ApplyVaultSecrets exports the secret's configuration keys into the process
// environment so that config.Load picks them up. Existing variables win
// unless Overwrite is set. A disabled config is a no-op.
func ApplyVaultSecrets(ctx context.Context, cfg VaultConfig) (VaultResult, error) {
	var result VaultResult
	if !cfg.Enabled {
		return result, nil
	}

	data, err := fetch(ctx, cfg)
	if err != nil {
		return result, err
	}

	for key, value := range data {
		if !hasConfigPrefix(key) {
			result.Ignored++
			continue
		}
		if !cfg.Overwrite && os.Getenv(key) != "" {
			result.Skipped++
			continue
		}
		if err := os.Setenv(key, stringify(value)); err != nil {
			return result, fmt.Errorf("set %s: %w", key, err)
		}
		result.Loaded++
	}
	return result, nil
}

func fetch(ctx context.Context, cfg VaultConfig) (map[string]any, error) {
	url, err := secretURL(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Vault-Token", cfg.Token)
	if cfg.Namespace != "" {
		req.Header.Set("X-Vault-Namespace", cfg.Namespace)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vault request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("vault returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	// KV v2 nests the secret one level deeper than v1.
	var payload struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode vault response: %w", err)
	}
	raw := payload.Data
	if cfg.KVVersion != 1 {
		var nested struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("decode vault KV v2 data: %w", err)
		}
		raw = nested.Data
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		return nil, fmt.Errorf("vault secret %s has no data", cfg.Path)
	}
	return data, nil
}

func secretURL(cfg VaultConfig) (string, error) {
	addr := strings.TrimRight(cfg.Addr, "/")
	mount := strings.Trim(cfg.Mount, "/")
	path := strings.Trim(cfg.Path, "/")
	if addr == "" || cfg.Token == "" || mount == "" || path == "" {
		return "", errors.New("vault configuration incomplete (VAULT_ADDR, VAULT_TOKEN, VAULT_MOUNT, VAULT_PATH)")
	}
	if cfg.KVVersion == 1 {
		return fmt.Sprintf("%s/v1/%s/%s", addr, mount, path), nil
	}
	return fmt.Sprintf("%s/v1/%s/data/%s", addr, mount, path), nil
}

func hasConfigPrefix(key string) bool {
	for _, prefix := range ConfigPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
