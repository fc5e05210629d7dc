package offers

import (
	"testing"

	"placement-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowByKey(t *testing.T, key string) Row {
	t.Helper()
	for _, r := range Rows() {
		if r.Key == key {
			return r
		}
	}
	t.Fatalf("row %q not found", key)
	return Row{}
}

func TestScore_SeedOffers(t *testing.T) {
	seed := SeedOffers()

	assert.Equal(t, 83, Score(seed[0], seed))
	assert.Equal(t, 89, Score(seed[1], seed))
	assert.Equal(t, 72, Score(seed[2], seed))
}

func TestScore_RelativeToHighestCTC(t *testing.T) {
	seed := SeedOffers()
	withoutTop := []models.Offer{seed[0], seed[2]}

	assert.Equal(t, 87, Score(seed[0], withoutTop))
	assert.Equal(t, 75, Score(seed[2], withoutTop))
}

func TestScore_ZeroCTCUsesMidpoint(t *testing.T) {
	o := models.Offer{ID: "x", GrowthRating: 1, WLBRating: 1, BrandRating: 1}
	// 50*0.3 + 20*0.25 + 20*0.15 + 20*0.15
	assert.Equal(t, 26, Score(o, []models.Offer{o}))
}

func TestRank_OrdersByScore(t *testing.T) {
	ranked := Rank(SeedOffers())
	require.Len(t, ranked, 3)

	assert.Equal(t, "o2", ranked[0].ID)
	assert.Equal(t, "o1", ranked[1].ID)
	assert.Equal(t, "o3", ranked[2].ID)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	a := SeedOffers()[0]
	b := a
	b.ID = "copy"

	ranked := Rank([]models.Offer{a, b})
	assert.Equal(t, "o1", ranked[0].ID)
	assert.Equal(t, "copy", ranked[1].ID)
}

func TestWinners_SeedOffers(t *testing.T) {
	w := Winners(SeedOffers())

	assert.Equal(t, map[string]string{
		"ctc":    "o2",
		"inhand": "o2",
		"bonus":  "o1",
		"wlb":    "o3",
	}, w)
}

func TestWinner(t *testing.T) {
	seed := SeedOffers()

	t.Run("descriptive rows never win", func(t *testing.T) {
		assert.Empty(t, Winner(rowByKey(t, "location"), seed))
		assert.Empty(t, Winner(rowByKey(t, "domain"), seed))
	})

	t.Run("shared best value has no winner", func(t *testing.T) {
		assert.Empty(t, Winner(rowByKey(t, "growth"), seed))
	})

	t.Run("first two zero suppresses the row", func(t *testing.T) {
		offers := SeedOffers()
		offers[0].JoiningBonus = 0
		offers[2].JoiningBonus = 50000
		assert.Empty(t, Winner(rowByKey(t, "bonus"), offers))
	})

	t.Run("remote beats hybrid", func(t *testing.T) {
		offers := SeedOffers()
		offers[2].WorkMode = models.WorkModeRemote
		assert.Equal(t, "o3", Winner(rowByKey(t, "wfh"), offers))
	})

	t.Run("single offer wins nonzero rows", func(t *testing.T) {
		assert.Equal(t, "o1", Winner(rowByKey(t, "ctc"), seed[:1]))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Empty(t, Winner(rowByKey(t, "ctc"), nil))
	})
}

func TestCompare(t *testing.T) {
	cmp, err := Compare(SeedOffers())
	require.NoError(t, err)
	assert.Equal(t, "o2", cmp.Top.ID)
	assert.Equal(t, 89, cmp.Top.Score)
	assert.Len(t, cmp.Ranked, 3)
	assert.Equal(t, "o1", cmp.Winners["bonus"])
}

func TestCompare_Errors(t *testing.T) {
	_, err := Compare(nil)
	assert.ErrorIs(t, err, ErrNoOffers)

	five := append(SeedOffers(), SeedOffers()[:2]...)
	_, err = Compare(five)
	assert.ErrorIs(t, err, ErrTooManyOffers)

	bad := SeedOffers()
	bad[1].GrowthRating = 6
	_, err = Compare(bad)
	require.ErrorIs(t, err, ErrInvalidOffer)
	assert.Contains(t, err.Error(), "GrowthRating")

	bad = SeedOffers()
	bad[0].WorkMode = "Office"
	_, err = Compare(bad)
	assert.ErrorIs(t, err, ErrInvalidOffer)
}

func TestInHandMonthly(t *testing.T) {
	assert.InDelta(t, 163333.33, InHandMonthly(28), 0.01)
}

func TestRows_Order(t *testing.T) {
	var keys []string
	for _, r := range Rows() {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"ctc", "inhand", "bonus", "location", "domain", "wfh", "health", "relocation", "growth", "wlb", "brand"}, keys)
}
