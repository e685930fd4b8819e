package listing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bazaario/goapi/domain"
)

func TestRoyaltySplit(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		amount    uint64
		percent   int32
		royalty   uint64
		remainder uint64
	}{
		{amount: 10000, percent: 0, royalty: 0, remainder: 10000},
		{amount: 10000, percent: 250, royalty: 250, remainder: 9750},
		{amount: 10000, percent: RoyaltyDenominator, royalty: 10000, remainder: 0},
		{amount: 999, percent: 100, royalty: 9, remainder: 990},
		{amount: 1, percent: 1, royalty: 0, remainder: 1},
		{amount: 0, percent: 5000, royalty: 0, remainder: 0},
	}

	for _, c := range cases {
		royalty, remainder := RoyaltySplit(c.amount, c.percent)
		req.Equal(c.royalty, royalty)
		req.Equal(c.remainder, remainder)
		req.Equal(c.amount, royalty+remainder)
	}
}

func TestGetFindAllOptions(t *testing.T) {
	req := require.New(t)

	seller := domain.Address("0xAbCd")
	opts, err := GetFindAllOptions(
		WithSeller(seller),
		WithActive(true),
		WithIsAuction(true),
		WithEndHeightLT(150),
		WithPagination(0, 20),
	)
	req.NoError(err)
	req.Equal(seller.ToLower(), *opts.Seller)
	req.True(*opts.Active)
	req.True(*opts.IsAuction)
	req.Equal(domain.BlockHeight(150), *opts.EndHeightLT)
	req.Equal(int32(0), *opts.Offset)
	req.Equal(int32(20), *opts.Limit)
	req.Nil(opts.SortBy)
}
