package echoapi

import (
	"os"
	"testing"

	"github.com/secwepemc-ed/curricula/core"
)

func TestMain(m *testing.M) {
	core.InitValidators()
	os.Exit(m.Run())
}
