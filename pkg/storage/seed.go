package storage

import (
	"encoding/json"
	"fmt"
	"os"
)

// Seed is the fixture document that populates the in-memory stores at
// process start. The memory stores copy what they need out of it, so the
// decoded document itself is never aliased by live data.
type Seed struct {
	Links []Link `json:"links"`
	Pages []Page `json:"pages"`
	Users []User `json:"users"`
}

func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return &seed, nil
}
