package re1

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"testing/quick"
	"time"

	"github.com/brownan/regescrossword/letterset"
)

var quickConfig *quick.Config

func TestMain(m *testing.M) {
	seed := time.Now().Unix()
	if s, err := strconv.ParseInt(os.Getenv("QUICK_TEST_SEED"), 10, 64); err == nil {
		seed = s
	}
	fmt.Println("seed", seed)
	quickConfig = &quick.Config{
		MaxCount: 200,
		Rand:     rand.New(rand.NewSource(seed)),
	}
	os.Exit(m.Run())
}

// TestQuickConstrainNeverGrows checks that constraining any slot of a
// compiled pattern never increases the number of surviving chains,
// regardless of which slot or which subset of the alphabet is applied.
func TestQuickConstrainNeverGrows(t *testing.T) {
	alphabet := letterset.Of("ABCD")
	re := mustNew(t, "A*B*C?D+|AB|BC|(AB)\\1C*", 4, "ABCD")

	err := quick.Check(func(slot uint8, mask uint8) bool {
		i := int(slot) % re.Length
		s := letterset.Set(mask) & alphabet

		before := re.NumChains()
		cp := re.Copy()
		cp.ConstrainSlot(i, s)
		after := cp.NumChains()
		return after <= before
	}, quickConfig)
	if err != nil {
		t.Error(err)
	}
}

// TestQuickMatchIsRepeatable matches a small pattern against a fixed
// table of strings many times over, and checks that Match's answer only
// depends on a string's own letters, never on prior Match calls (i.e.
// Match truly leaves re unconstrained).
func TestQuickMatchIsRepeatable(t *testing.T) {
	re := mustNew(t, "(DI|NS|TH|OM)*", 8, "DINSTHOMZ")
	want := map[string]bool{
		"DIDIDIDI": true,
		"DINSTHOM": true,
		"OMTHNSDI": true,
		"ZZZZZZZZ": false,
	}
	err := quick.Check(func(_ int) bool {
		for s, expect := range want {
			if re.Match(s) != expect {
				return false
			}
		}
		return true
	}, &quick.Config{MaxCount: 20, Rand: quickConfig.Rand})
	if err != nil {
		t.Error(err)
	}
}
