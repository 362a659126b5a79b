package json_test

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/teenjuna/dynarray"
	"github.com/teenjuna/dynarray/codec/json"
	"github.com/teenjuna/dynarray/internal/testing/require"
)

func TestCodec(t *testing.T) {
	type Item struct {
		ID string
		N1 int
		N2 float64
	}

	seq, err := dynarray.New[Item]()
	require.Nil(t, err)

	codec := json.New[Item]()

	var items []Item
	for i := range 1000 {
		item := Item{
			ID: strconv.Itoa(i),
			N1: rand.IntN(1000),
			N2: float64(rand.IntN(1000)) / 4,
		}
		items = append(items, item)
		seq.Add(item)
	}

	data, err := codec.Encode(seq.Values())
	require.Nil(t, err)
	require.NotEqual(t, len(data), 0)

	seq.Clear()

	err = codec.Decode(data, seq.Add)
	require.Nil(t, err)
	require.Equal(t, slices.Collect(seq.Values()), items)
}

func TestCodecEmpty(t *testing.T) {
	codec := json.New[int]()

	data, err := codec.Encode(slices.Values([]int(nil)))
	require.Nil(t, err)
	require.Equal(t, string(data), "[]\n")

	var pushed int
	require.Nil(t, codec.Decode(data, func(int) { pushed++ }))
	require.Equal(t, pushed, 0)
}

func TestCodecInvalid(t *testing.T) {
	codec := json.New[int]()
	require.NotNil(t, codec.Decode([]byte("{"), func(int) {}))
}
