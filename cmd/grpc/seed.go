package main

import (
	"encoding/json"
	"fmt"
	"os"

	btRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/batchtype/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	refRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/reference/repository"
)

// seedData is the layout of LEDGER_SEED_FILE.
type seedData struct {
	Products   []model.Product   `json:"products"`
	Branches   []model.Branch    `json:"branches"`
	BatchTypes []model.BatchType `json:"batch_types"`
}

func loadSeed(path string, batchTypes *btRepoPkg.MemoryRepository, refs *refRepoPkg.MemoryRepository) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	for _, p := range data.Products {
		refs.PutProduct(p)
	}
	for _, b := range data.Branches {
		refs.PutBranch(b)
	}
	for _, bt := range data.BatchTypes {
		batchTypes.Put(bt)
	}
	return len(data.Products) + len(data.Branches) + len(data.BatchTypes), nil
}
