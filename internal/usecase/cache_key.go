package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type listCacheKeyInput struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// ListCacheKey derives a stable cache key for a paginated admin listing.
// The entity name prefixes the key so invalidation can target one entity
// with a single pattern delete.
func ListCacheKey(entity, search, status string, page, pageSize int) string {
	in := listCacheKeyInput{
		Search:   normalizeSearchValue(search),
		Status:   strings.ToUpper(strings.TrimSpace(status)),
		Page:     page,
		PageSize: pageSize,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return entity + ":list:" + h
}

// ListCachePattern matches every cached page of an entity's listing.
func ListCachePattern(entity string) string {
	return entity + ":list:*"
}
