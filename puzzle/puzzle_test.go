package puzzle

import (
	"testing"

	"github.com/brownan/regescrossword/letterset"
	"github.com/brownan/regescrossword/re1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineLengths is the number of cells in each of the 13 lines of any
// traversal family on a side-7 board (7,8,...,13,...,8,7).
var lineLengths = [2*Side - 1]int{7, 8, 9, 10, 11, 12, 13, 12, 11, 10, 9, 8, 7}

func TestEveryPatternParses(t *testing.T) {
	alphabet := letterset.Of(Alphabet)
	for i, p := range L2R {
		_, err := re1.New(p, lineLengths[i], alphabet)
		assert.NoErrorf(t, err, "L2R[%d] = %q", i, p)
	}
	for i, p := range UR2LL {
		_, err := re1.New(p, lineLengths[i], alphabet)
		assert.NoErrorf(t, err, "UR2LL[%d] = %q", i, p)
	}
	for i, p := range LR2UL {
		_, err := re1.New(p, lineLengths[i], alphabet)
		assert.NoErrorf(t, err, "LR2UL[%d] = %q", i, p)
	}
}

func TestBlankMatchesSizeConventions(t *testing.T) {
	l2r, ur2ll, lr2ul := Blank(7)
	require.Len(t, l2r, 2*Side-1)
	require.Len(t, ur2ll, 2*Side-1)
	require.Len(t, lr2ul, 2*Side-1)
	for _, p := range l2r {
		assert.Equal(t, ".*", p)
	}
}
