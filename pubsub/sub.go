package pubsub

import "sync"

// ClientID identifies one subscriber to the publisher.
type ClientID string

type subscriber struct {
	clientID ClientID
	pub      *Publisher
	handlers map[Topic]Handler
	wg       *sync.WaitGroup
}

// NewSubscriber registers a client on the publisher. Each clientID may be
// registered once.
func (publisher *Publisher) NewSubscriber(clientID ClientID) (*subscriber, error) {
	publisher.mtx.Lock()
	defer publisher.mtx.Unlock()

	if _, ok := publisher.clients[clientID]; ok {
		return nil, ErrDuplicateClientID
	}
	publisher.clients[clientID] = make(map[Topic]struct{})
	return &subscriber{
		clientID: clientID,
		pub:      publisher,
		handlers: make(map[Topic]Handler),
		wg:       &sync.WaitGroup{},
	}, nil
}

func (s *subscriber) Subscribe(topic Topic, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	s.handlers[topic] = handler
	return s.pub.subscribe(s, topic)
}

func (s *subscriber) Unsubscribe(topic Topic) error {
	return s.pub.unsubscribe(s.clientID, topic)
}

func (s *subscriber) UnsubscribeAll() error {
	return s.pub.unsubscribe(s.clientID, "")
}

// Wait blocks until every in-flight delivery to this subscriber returns.
func (s *subscriber) Wait() {
	s.wg.Wait()
}
