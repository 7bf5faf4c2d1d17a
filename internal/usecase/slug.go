package usecase

import (
	"context"
	"math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/tele1/storefront/internal/domain"
)

var nonWord = regexp.MustCompile(`[^\w-]+`)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// slugify lowercases, turns spaces into hyphens and strips everything that is
// not a word character or hyphen.
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return nonWord.ReplaceAllString(s, "")
}

func randomSuffix() string {
	b := make([]byte, 5)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// uniqueSlug appends a random 5-char suffix only when the base slug already
// belongs to another product. excludeID lets updates keep their own slug.
func uniqueSlug(ctx context.Context, repo domain.ProductRepo, name string, excludeID uuid.UUID) (string, error) {
	base := slugify(name)
	taken, err := repo.SlugExists(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + randomSuffix(), nil
}

// importSlug always carries a suffix so that concurrent rows never collide.
func importSlug(name string) string {
	return slugify(name) + "-" + randomSuffix()
}
