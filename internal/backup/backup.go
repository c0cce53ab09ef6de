// Package backup writes the list collection to passphrase-protected files
// and reads it back.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dukerupert/mercado/internal/model"
)

const formatVersion = 1

var ErrNoPassphrase = errors.New("backup passphrase is required")

type envelope struct {
	Version int          `json:"version"`
	Lists   []model.List `json:"lists"`
}

// Export encodes and encrypts lists.
func Export(lists []model.List, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrNoPassphrase
	}
	if lists == nil {
		lists = []model.List{}
	}
	plain, err := json.Marshal(envelope{Version: formatVersion, Lists: lists})
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return Encrypt(plain, passphrase)
}

// Import decrypts and decodes data produced by Export.
func Import(data []byte, passphrase string) ([]model.List, error) {
	if passphrase == "" {
		return nil, ErrNoPassphrase
	}
	plain, err := Decrypt(data, passphrase)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(plain, &env); err != nil {
		return nil, fmt.Errorf("unmarshal backup: %w", err)
	}
	if env.Version != formatVersion {
		return nil, fmt.Errorf("unsupported backup version %d", env.Version)
	}
	if env.Lists == nil {
		env.Lists = []model.List{}
	}
	return env.Lists, nil
}

func WriteFile(path string, lists []model.List, passphrase string) error {
	data, err := Export(lists, passphrase)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

func ReadFile(path, passphrase string) ([]model.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return Import(data, passphrase)
}
