package goroutine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverableGo(t *testing.T) {
	req := require.New(t)

	ch := RecoverableGo(func() {})
	ev, ok := <-ch
	req.Nil(ev)
	req.False(ok)

	recovered := false
	ch = RecoverableGo(func() {
		panic("boom")
	}, WithAfterRecovered(func(p interface{}, stack []byte) {
		recovered = true
	}))
	ev = <-ch
	req.NotNil(ev)
	req.Equal("boom", ev.Panic)
	req.True(recovered)
}
