package shell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gonzen2310/singlylinkedlist/list"
)

func TestDemo(t *testing.T) {
	var (
		out bytes.Buffer
		l   = list.New[int]()
	)
	require.NoError(t, Demo(&out, l))
	require.Equal(t, ""+
		"2, 123, 777, 96, 69, 0, 150, 7, 19, 3, 16\n"+
		"Length: 11\n"+
		"\n"+
		"2, 123, 777, 96, 10, 6969, 69, 0, 150, 7, 19, 3, 16\n"+
		"Length: 13\n"+
		"\n"+
		"10, 6969, 69, 0, 150, 7, 19\n"+
		"Length: 7\n"+
		"\n"+
		"First: 10\n"+
		"Last: 19\n"+
		"6969, 69, 0, 150, 19\n"+
		"Length: 5\n"+
		"\n"+
		"0\n"+
		"6969, 69, 150, 19\n"+
		"Length: 4\n"+
		"\n",
		out.String(),
	)
	require.Equal(t, []int{6969, 69, 150, 19}, l.Values())
}
