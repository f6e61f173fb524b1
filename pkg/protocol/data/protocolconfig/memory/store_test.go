package memory

import (
	"testing"

	"github.com/feevault/feevault-server/pkg/protocol/data/protocolconfig/tests"
)

func TestProtocolConfigMemoryStore(t *testing.T) {
	testStore := New()
	teardown := func() {
		testStore.(*store).reset()
	}
	tests.RunTests(t, testStore, teardown)
}
