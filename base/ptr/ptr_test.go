package ptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	req := require.New(t)
	req.Equal("abc", *String("abc"))
	req.Equal(int32(-7), *Int32(-7))
	req.Equal(int64(42), *Int64(42))
	req.Equal(uint64(10000), *Uint64(10000))
	req.Equal(true, *Bool(true))
}
