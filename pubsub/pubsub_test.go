package pubsub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const tallyT = Topic("tally")

type tallyChangedEvent struct {
	yea int64
}

func (e tallyChangedEvent) GetTopic() Topic {
	return tallyT
}

func startPublisher(t *testing.T) *Publisher {
	pub := NewPublisher("test_pubsub", nil)
	require.Nil(t, pub.Start())
	return pub
}

func TestSubscribe(t *testing.T) {
	pub := startPublisher(t)
	defer pub.Stop()

	sub, err := pub.NewSubscriber("test_client")
	require.Nil(t, err)

	_, err = pub.NewSubscriber("test_client")
	require.Equal(t, ErrDuplicateClientID, err)

	var gotYea int64
	err = sub.Subscribe(tallyT, func(event Event) {
		if tc, ok := event.(tallyChangedEvent); ok {
			time.Sleep(50 * time.Millisecond)
			gotYea = tc.yea
		}
	})
	require.Nil(t, err)
	err = sub.Subscribe(tallyT, func(event Event) {})
	require.Equal(t, ErrAlreadySubscribed, err)

	pub.Publish(tallyChangedEvent{yea: 100})
	time.Sleep(10 * time.Millisecond)
	require.NotEqual(t, int64(100), gotYea)
	sub.Wait()
	require.Equal(t, int64(100), gotYea)
}

func TestSubscribeNilHandler(t *testing.T) {
	pub := startPublisher(t)
	defer pub.Stop()

	sub, err := pub.NewSubscriber("test_client")
	require.Nil(t, err)
	require.Equal(t, ErrNilHandler, sub.Subscribe(tallyT, nil))
}

func TestUnsubscribe(t *testing.T) {
	pub := startPublisher(t)
	defer pub.Stop()

	clientID := ClientID("test_client")
	sub, err := pub.NewSubscriber(clientID)
	require.Nil(t, err)

	require.Nil(t, sub.Subscribe(tallyT, func(event Event) {}))
	require.True(t, pub.HasSubscribed(clientID, tallyT))

	require.Nil(t, sub.Unsubscribe(tallyT))
	require.False(t, pub.HasSubscribed(clientID, tallyT))

	require.Equal(t, ErrSubscriptionNotFound, sub.Unsubscribe(tallyT))
}

func TestUnsubscribeAll(t *testing.T) {
	pub := startPublisher(t)
	defer pub.Stop()

	clientID := ClientID("test_client")
	sub, err := pub.NewSubscriber(clientID)
	require.Nil(t, err)

	require.Nil(t, sub.Subscribe(tallyT, func(event Event) {}))
	require.Nil(t, sub.Subscribe(Topic("other"), func(event Event) {}))

	require.Nil(t, sub.UnsubscribeAll())
	require.False(t, pub.HasSubscribed(clientID, ""))
}

func TestPublishWhileStopped(t *testing.T) {
	pub := NewPublisher("test_pubsub", nil)

	// must not block or panic
	pub.Publish(tallyChangedEvent{yea: 1})
}
