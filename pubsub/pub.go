package pubsub

import (
	"errors"
	"sync"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// ErrDuplicateClientID is returned when a client tries to subscribe
	// with an existing client ID.
	ErrDuplicateClientID = errors.New("clientID already exists")

	// ErrAlreadySubscribed is returned when a client subscribes twice to
	// the same topic.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrSubscriptionNotFound is returned when a client tries to
	// unsubscribe from a subscription it never made.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrNilHandler = errors.New("handler is nil")
)

// Publisher fans events out to subscribers by topic. Publish never blocks
// the caller on slow handlers: each delivery runs on its own goroutine and
// subscribers use Wait to drain in-flight deliveries.
type Publisher struct {
	common.BaseService
	name string

	mtx           sync.RWMutex
	subscriptions map[Topic]map[ClientID]*subscriber // topic -> clientID -> subscriber
	clients       map[ClientID]map[Topic]struct{}    // clientID -> subscribed topics

	events chan Event
}

func NewPublisher(name string, logger log.Logger) *Publisher {
	publisher := &Publisher{
		name:          name,
		subscriptions: make(map[Topic]map[ClientID]*subscriber),
		clients:       make(map[ClientID]map[Topic]struct{}),
		events:        make(chan Event),
	}
	publisher.BaseService = *common.NewBaseService(logger, name, publisher)
	return publisher
}

func (publisher *Publisher) OnStart() error {
	go publisher.loop()
	return nil
}

func (publisher *Publisher) OnStop() {}

func (publisher *Publisher) loop() {
	for {
		select {
		case event := <-publisher.events:
			publisher.push(event)
		case <-publisher.Quit():
			return
		}
	}
}

func (publisher *Publisher) push(event Event) {
	publisher.mtx.RLock()
	defer publisher.mtx.RUnlock()

	for _, sub := range publisher.subscriptions[event.GetTopic()] {
		handler := sub.handlers[event.GetTopic()]
		sub.wg.Add(1)
		go func(s *subscriber) {
			defer s.wg.Done()
			handler(event)
		}(sub)
	}
}

// Publish hands the event to the delivery loop. It is a no-op when the
// publisher is not running.
func (publisher *Publisher) Publish(e Event) {
	if !publisher.IsRunning() {
		return
	}
	select {
	case publisher.events <- e:
	case <-publisher.Quit():
	}
}

// HasSubscribed reports whether the client is subscribed to the topic; with
// an empty topic, whether the client exists at all.
func (publisher *Publisher) HasSubscribed(clientID ClientID, topic Topic) bool {
	publisher.mtx.RLock()
	defer publisher.mtx.RUnlock()

	topics, ok := publisher.clients[clientID]
	if !ok {
		return false
	}
	if len(topic) != 0 {
		_, ok = topics[topic]
	}
	return ok
}

func (publisher *Publisher) subscribe(s *subscriber, topic Topic) error {
	publisher.mtx.Lock()
	defer publisher.mtx.Unlock()

	topics, ok := publisher.clients[s.clientID]
	if !ok {
		return ErrSubscriptionNotFound
	}
	if _, ok := topics[topic]; ok {
		return ErrAlreadySubscribed
	}

	if _, ok := publisher.subscriptions[topic]; !ok {
		publisher.subscriptions[topic] = make(map[ClientID]*subscriber)
	}
	publisher.subscriptions[topic][s.clientID] = s
	topics[topic] = struct{}{}
	return nil
}

func (publisher *Publisher) unsubscribe(clientID ClientID, topic Topic) error {
	publisher.mtx.Lock()
	defer publisher.mtx.Unlock()

	topics, ok := publisher.clients[clientID]
	if !ok {
		return ErrSubscriptionNotFound
	}

	if len(topic) != 0 {
		if _, ok := topics[topic]; !ok {
			return ErrSubscriptionNotFound
		}
		publisher.remove(clientID, topic)
		delete(topics, topic)
		return nil
	}

	for t := range topics {
		publisher.remove(clientID, t)
	}
	delete(publisher.clients, clientID)
	return nil
}

// CONTRACT: publisher.mtx held.
func (publisher *Publisher) remove(clientID ClientID, topic Topic) {
	clientSubscriptions, ok := publisher.subscriptions[topic]
	if !ok {
		return
	}
	delete(clientSubscriptions, clientID)
	if len(clientSubscriptions) == 0 {
		delete(publisher.subscriptions, topic)
	}
}
