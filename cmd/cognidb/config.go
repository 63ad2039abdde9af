package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"
	"gopkg.in/yaml.v3"
)

const keyringService = "cognidb"

// fileConfig is the on-disk connection profile. The password never lands
// here; it lives in the OS keyring.
type fileConfig struct {
	Endpoint string `yaml:"endpoint"`
	User     string `yaml:"user"`
	Managed  bool   `yaml:"managed"`
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cognidb", "config.yaml"), nil
}

func loadFileConfig() (*fileConfig, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no connection profile found, run `cognidb login` first")
	}
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func saveFileConfig(cfg *fileConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func openKeyring() (keyring.Keyring, error) {
	return keyring.Open(keyring.Config{
		ServiceName: keyringService,
	})
}

func storePassword(user, password string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}
	return ring.Set(keyring.Item{
		Key:  user,
		Data: []byte(password),
	})
}

func loadPassword(user string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(user)
	if err != nil {
		return "", fmt.Errorf("no stored password for %s, run `cognidb login` again: %w", user, err)
	}
	return string(item.Data), nil
}

func removePassword(user string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}
	return ring.Remove(user)
}
