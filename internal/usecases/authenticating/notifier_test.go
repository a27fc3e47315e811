package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

func TestNotifier_DistribuiParaTodos(t *testing.T) {
	notifier := NewNotifier()

	first, unsubscribeFirst := notifier.Subscribe()
	second, unsubscribeSecond := notifier.Subscribe()
	defer unsubscribeSecond()

	notifier.Publish(domain.SessionEvent{Type: domain.SessionSignedIn, SessionID: "abc"})

	assert.Equal(t, "abc", (<-first).SessionID)
	assert.Equal(t, "abc", (<-second).SessionID)

	unsubscribeFirst()
	unsubscribeFirst()

	_, open := <-first
	assert.False(t, open)
	assert.Equal(t, 1, notifier.subscriberCount())
}

func TestNotifier_InscritoLentoNaoBloqueia(t *testing.T) {
	notifier := NewNotifier()
	events, unsubscribe := notifier.Subscribe()
	defer unsubscribe()

	for i := 0; i < subscriberBuffer*3; i++ {
		notifier.Publish(domain.SessionEvent{Type: domain.SessionSignedOut})
	}

	assert.Len(t, events, subscriberBuffer)
}
