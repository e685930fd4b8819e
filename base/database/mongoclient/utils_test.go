package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaario/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	req := require.New(t)

	type patchable struct {
		Name    *string `bson:"name,omitempty"`
		Price   *uint64 `bson:"price,omitempty"`
		Active  *bool   `bson:"active,omitempty"`
		Ignored string  `bson:"-"`
	}

	m, err := MakeBsonM(&patchable{
		Name:    ptr.String("rare sword"),
		Ignored: "nope",
	})
	req.NoError(err)
	req.Equal(bson.M{"name": "rare sword"}, m)

	// a set pointer to a zero value must survive the conversion
	m, err = MakeBsonM(&patchable{
		Active: ptr.Bool(false),
		Price:  ptr.Uint64(100),
	})
	req.NoError(err)
	req.Equal(bson.M{"active": false, "price": uint64(100)}, m)
}
