package catalog

import (
	"strings"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/stretchr/testify/suite"
)

type LoadTestSuite struct {
	suite.Suite
}

func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}

func (s *LoadTestSuite) TestLoad() {
	doc := `
items:
  - id: card_001
    name: Morning Star
    rarity: Common
    series: Sky
  - id: card_002
    name: Golden Comet
    rarity: limited edition
    image_url: https://cdn.example.com/card_002.png
`
	items, err := Load(strings.NewReader(doc))
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(domain.RarityCommon, items[0].Rarity)
	s.Equal("Sky", items[0].Series)
	s.Equal(domain.RarityLimitedEdition, items[1].Rarity)
	s.Equal("https://cdn.example.com/card_002.png", items[1].ImageURL)
}

func (s *LoadTestSuite) TestLoadErrors() {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown rarity",
			doc:  "items:\n  - id: a\n    name: A\n    rarity: Ultra\n",
		}, {
			name: "duplicate id",
			doc:  "items:\n  - id: a\n    name: A\n    rarity: Rare\n  - id: a\n    name: B\n    rarity: Rare\n",
		}, {
			name: "missing name",
			doc:  "items:\n  - id: a\n    rarity: Rare\n",
		}, {
			name: "unknown field",
			doc:  "items:\n  - id: a\n    name: A\n    rarity: Rare\n    price: 10\n",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := Load(strings.NewReader(t.doc))
			s.Error(err)
		})
	}
}
