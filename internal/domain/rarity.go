package domain

import (
	"fmt"
	"strings"
)

// Rarity упорядоченная редкость карточки. Порядок значений важен, на нем построены таблицы цен.
type Rarity int

const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythic
	RarityRetro
	RarityZenith
	RarityLimitedEdition
)

var rarityNames = map[Rarity]string{
	RarityCommon:         "Common",
	RarityUncommon:       "Uncommon",
	RarityRare:           "Rare",
	RarityEpic:           "Epic",
	RarityLegendary:      "Legendary",
	RarityMythic:         "Mythic",
	RarityRetro:          "Retro",
	RarityZenith:         "Zenith",
	RarityLimitedEdition: "Limited Edition",
}

// Rarities все редкости по возрастанию.
func Rarities() []Rarity {
	return []Rarity{
		RarityCommon,
		RarityUncommon,
		RarityRare,
		RarityEpic,
		RarityLegendary,
		RarityMythic,
		RarityRetro,
		RarityZenith,
		RarityLimitedEdition,
	}
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

func (r Rarity) IsValid() bool {
	_, ok := rarityNames[r]
	return ok
}

// ParseRarity разбирает название редкости без учета регистра, пробелов и дефисов.
func ParseRarity(s string) (Rarity, error) {
	normalized := normalizeRarity(s)
	for r, name := range rarityNames {
		if normalizeRarity(name) == normalized {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

func normalizeRarity(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

func (r Rarity) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rarity %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
